package paths

import (
	"bytes"
	"io"
	"net/http"
	"os"
	"sync"

	"github.com/golang/glog"
	"github.com/pkg/errors"
)

var (
	cache     map[string]*bytes.Buffer
	cacheLock sync.Mutex
)

// OpenURL fetches an animation archive over HTTP and returns a reader for
// its bytes. Fetched archives are kept in an in-memory cache keyed by
// URL, so repeated opens of the same animation do not refetch it.
func OpenURL(url string) (io.ReadCloser, error) {
	cacheLock.Lock()
	defer cacheLock.Unlock()

	if cache == nil {
		cache = make(map[string]*bytes.Buffer)
	}
	if buf, ok := cache[url]; ok {
		glog.V(1).Infof("paths.OpenURL(%q): cache hit", url)
		return io.NopCloser(bytes.NewReader(buf.Bytes())), nil
	}

	response, err := http.Get(url)
	if err != nil {
		return nil, errors.Wrapf(err, "go-sza/paths.OpenURL(%q): failed to fetch", url)
	}
	defer response.Body.Close()
	if response.StatusCode != http.StatusOK {
		e := os.ErrInvalid
		if response.StatusCode == http.StatusNotFound {
			e = os.ErrNotExist
		}
		return nil, errors.Wrapf(e, "go-sza/paths.OpenURL(%q): http response.StatusCode=%v, want 200", url, response.StatusCode)
	}

	buf := &bytes.Buffer{}
	if _, err := io.Copy(buf, response.Body); err != nil {
		return nil, errors.Wrapf(err, "go-sza/paths.OpenURL(%q): copying response to buffer", url)
	}
	cache[url] = buf

	glog.V(1).Infof("paths.OpenURL(%q): fetched %d bytes", url, buf.Len())
	return io.NopCloser(bytes.NewReader(buf.Bytes())), nil
}
