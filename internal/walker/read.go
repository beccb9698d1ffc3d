package walker

import (
	"os"
	"unicode/utf8"

	"github.com/edsrzf/mmap-go"
	"github.com/h2non/filetype"
)

// smallFileThreshold is the size below which ReadFile heap-reads instead of
// mmap-ing.
const smallFileThreshold = 32 * 1024

// nulProbeWindow bounds the binary-content test to the first 8 KB.
const nulProbeWindow = 8 * 1024

// ReadFile opens path, enforces limit (if > 0), rejects binary content via
// a NUL test over the first 8 KB, and validates the result as UTF-8. It
// returns ok == false for any of: missing file, over-limit, binary,
// invalid UTF-8.
func ReadFile(path string, limit int64) (content string, ok bool, err error) {
	f, err := os.Open(path)
	if err != nil {
		return "", false, err
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return "", false, err
	}
	if limit > 0 && st.Size() > limit {
		return "", false, nil
	}
	if st.Size() == 0 {
		return "", true, nil
	}

	var data []byte
	if st.Size() < smallFileThreshold {
		data = make([]byte, st.Size())
		if _, err := readFull(f, data); err != nil {
			return "", false, err
		}
	} else {
		m, err := mmap.Map(f, mmap.RDONLY, 0)
		if err != nil {
			return "", false, err
		}
		defer m.Unmap()
		data = make([]byte, len(m))
		copy(data, m)
	}

	window := data
	if len(window) > nulProbeWindow {
		window = window[:nulProbeWindow]
	}
	if kind, err := filetype.Match(window); err == nil && kind != filetype.Unknown {
		// A magic-byte match (image, archive, executable, ...) catches
		// misnamed binaries a content-based walk would otherwise try to
		// decode as UTF-8 text, independent of the extension denylist.
		return "", false, nil
	}
	for _, b := range window {
		if b == 0 {
			return "", false, nil
		}
	}

	if !utf8.Valid(data) {
		return "", false, nil
	}
	return string(data), true, nil
}

func readFull(f *os.File, buf []byte) (int, error) {
	total := 0
	for total < len(buf) {
		n, err := f.Read(buf[total:])
		total += n
		if err != nil {
			if total == len(buf) {
				return total, nil
			}
			return total, err
		}
		if n == 0 {
			break
		}
	}
	return total, nil
}
