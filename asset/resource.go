// Package asset opens the files a scene depends on. Resources can live on
// the local filesystem or be fetched over http(s).
package asset

import (
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// Resource wraps a local file or a remote http body.
type Resource struct {
	io.ReadCloser
	url *url.URL
}

// Returns the path to this resource.
func (r *Resource) Path() string {
	return r.url.String()
}

// Returns true if the Resource is streamed over http/https.
func (r *Resource) IsRemote() bool {
	return r.url.Scheme != ""
}

// Read the entire resource contents and close it.
func (r *Resource) ReadAll() ([]byte, error) {
	defer r.Close()
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrapf(err, "resource: could not read '%s'", r.Path())
	}
	return data, nil
}

// Open a resource. If relTo is specified and pathToResource is neither
// absolute nor defines a scheme, the resource is resolved relative to the
// directory containing relTo.
//
// The caller must close the returned resource.
func Open(pathToResource string, relTo *Resource) (*Resource, error) {
	target, err := Resolve(pathToResource, relTo)
	if err != nil {
		return nil, err
	}

	var reader io.ReadCloser
	switch target.Scheme {
	case "":
		reader, err = os.Open(filepath.Clean(target.Path))
		if err != nil {
			return nil, errors.Wrap(err, "resource")
		}
	case "http", "https":
		resp, err := http.Get(target.String())
		if err != nil {
			return nil, errors.Wrapf(err, "resource: could not fetch '%s'", target.String())
		}
		if resp.StatusCode >= 400 {
			resp.Body.Close()
			return nil, errors.Errorf("resource: could not fetch '%s': status %d", target.String(), resp.StatusCode)
		}
		reader = resp.Body
	default:
		return nil, errors.Errorf("resource: unsupported scheme '%s'", target.Scheme)
	}

	return &Resource{
		ReadCloser: reader,
		url:        target,
	}, nil
}

// Resolve the location of a resource without opening it.
func Resolve(pathToResource string, relTo *Resource) (*url.URL, error) {
	// Accept windows-style separators
	target, err := url.Parse(strings.Replace(pathToResource, `\`, `/`, -1))
	if err != nil {
		return nil, errors.Wrap(err, "resource")
	}

	if target.Scheme != "" || relTo == nil || filepath.IsAbs(target.Path) {
		return target, nil
	}

	base := *relTo.url
	if base.Scheme == "" {
		base.Path = filepath.Join(filepath.Dir(base.Path), target.Path)
	} else {
		base.Path = path.Join(path.Dir(base.Path), target.Path)
	}
	return &base, nil
}

// Create a resource from a reader.
func FromStream(name string, source io.Reader) *Resource {
	u, _ := url.Parse(name)
	return &Resource{
		ReadCloser: io.NopCloser(source),
		url:        u,
	}
}
