package sources

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/reusee/esotape/logs"
	"github.com/reusee/esotape/nets"
)

// MaxSize bounds the bytes read from any location.
const MaxSize = 64 << 20

type Stdin io.Reader

func (Module) Stdin() Stdin {
	return os.Stdin
}

// Load reads program text from a file path, "-" for stdin, or an http(s) url.
type Load func(ctx context.Context, location string) (string, error)

func (Module) Load(
	client nets.HTTPClient,
	stdin Stdin,
	logger logs.Logger,
) Load {
	return func(ctx context.Context, location string) (string, error) {
		logger.DebugContext(ctx, "load source", "location", location)

		switch {

		case location == "-":
			return readAll(stdin)

		case strings.HasPrefix(location, "http://"),
			strings.HasPrefix(location, "https://"):
			req, err := http.NewRequestWithContext(ctx, http.MethodGet, location, nil)
			if err != nil {
				return "", err
			}
			resp, err := client.Do(req)
			if err != nil {
				return "", err
			}
			defer resp.Body.Close()
			if resp.StatusCode < 200 || resp.StatusCode >= 300 {
				return "", fmt.Errorf("fetch %s: %s", location, resp.Status)
			}
			return readAll(resp.Body)

		default:
			f, err := os.Open(location)
			if err != nil {
				return "", err
			}
			defer f.Close()
			return readAll(f)

		}
	}
}

func readAll(r io.Reader) (string, error) {
	content, err := io.ReadAll(io.LimitReader(r, MaxSize+1))
	if err != nil {
		return "", err
	}
	if len(content) > MaxSize {
		return "", fmt.Errorf("source larger than %d bytes", MaxSize)
	}
	return string(content), nil
}
