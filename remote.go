package heredity

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/carbocation/pfx"
)

// openPath opens a local file, or a Google Storage object when the path
// carries the gs:// scheme. Pedigree files often live in the same buckets as
// the genetic data they annotate.
func openPath(path string) (io.ReadCloser, error) {
	if !strings.HasPrefix(path, "gs://") {
		f, err := os.Open(path)
		if err != nil {
			return nil, pfx.Err(err)
		}
		return f, nil
	}

	bucket, object, found := strings.Cut(strings.TrimPrefix(path, "gs://"), "/")
	if !found || object == "" {
		return nil, pfx.Err(fmt.Errorf("%q does not name a bucket and an object", path))
	}

	ctx := context.Background()
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, pfx.Err(err)
	}

	reader, err := client.Bucket(bucket).Object(object).NewReader(ctx)
	if err != nil {
		client.Close()
		return nil, pfx.Err(err)
	}

	return &remoteReader{ReadCloser: reader, client: client}, nil
}

// remoteReader ties the storage client's lifetime to the object reader's.
type remoteReader struct {
	io.ReadCloser
	client *storage.Client
}

func (r *remoteReader) Close() error {
	err := r.ReadCloser.Close()
	if cerr := r.client.Close(); err == nil {
		err = cerr
	}
	return err
}
