package window

import "src.ked.sh/pkg/buffer"

// Load loads the named file into the window. On error, the window is
// unchanged.
func (w *Window) Load(path string) error {
	buf, err := buffer.Load(path)
	if err != nil {
		return err
	}
	w.SetBuffer(buf)
	return nil
}

// Write writes the buffer to its file.
func (w *Window) Write() error { return w.buf.Write() }

// WriteAs writes the buffer to name, which becomes its file name on success.
func (w *Window) WriteAs(name string) error { return w.buf.WriteAs(name) }
