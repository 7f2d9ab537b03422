package gfx

import (
	"os"
	"path/filepath"

	"github.com/npillmayer/kuchi/core"
)

// WriteFiles writes data[i] to names[i], either all of them or none.
// Everything is written to temporary files first, which are then renamed.
// If any step fails, the files written so far are removed again.
func WriteFiles(names []string, data [][]byte) error {
	if len(names) != len(data) {
		return core.Error(core.EINTERNAL, "%d file names for %d files", len(names), len(data))
	}
	temps := make([]string, 0, len(names))
	removeAll := func(files []string) {
		for _, f := range files {
			os.Remove(f)
		}
	}
	for i, name := range names {
		tmp, err := writeTemp(name, data[i])
		if err != nil {
			removeAll(temps)
			return err
		}
		temps = append(temps, tmp)
	}
	for i, name := range names {
		if err := os.Rename(temps[i], name); err != nil {
			removeAll(names[:i])
			removeAll(temps[i:])
			return core.WrapError(err, core.EIO, "cannot write %s", name)
		}
	}
	tracer().Debugf("wrote %d file(s)", len(names))
	return nil
}

func writeTemp(name string, data []byte) (string, error) {
	tmp, err := os.CreateTemp(filepath.Dir(name), ".kuchi-*")
	if err != nil {
		return "", core.WrapError(err, core.EIO, "cannot create output for %s", name)
	}
	_, err = tmp.Write(data)
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(tmp.Name())
		return "", core.WrapError(err, core.EIO, "cannot write %s", name)
	}
	return tmp.Name(), nil
}
