package cache

import (
	"context"
	"fmt"
	"net/url"
	"strings"
)

// Open returns the backend named by rawURL:
//
//	""  or "none"                     NullCache
//	file:///path or a bare path        FileCache
//	redis://host:6379/0               RedisCache
//	mongodb://host/db?collection=c    MongoCache
//
// MongoDB URLs take the database from the path and the collection from the
// "collection" query parameter, falling back to the package defaults.
func Open(ctx context.Context, rawURL string) (Cache, error) {
	switch {
	case rawURL == "" || rawURL == "none":
		return NewNullCache(), nil
	case strings.HasPrefix(rawURL, "redis://"), strings.HasPrefix(rawURL, "rediss://"):
		c, err := DialRedis(ctx, rawURL)
		if err != nil {
			return nil, err
		}
		return c, nil
	case strings.HasPrefix(rawURL, "mongodb://"), strings.HasPrefix(rawURL, "mongodb+srv://"):
		u, err := url.Parse(rawURL)
		if err != nil {
			return nil, fmt.Errorf("parse cache url: %w", err)
		}
		db := strings.TrimPrefix(u.Path, "/")
		coll := u.Query().Get("collection")
		q := u.Query()
		q.Del("collection")
		u.RawQuery = q.Encode()
		c, err := DialMongo(ctx, u.String(), db, coll)
		if err != nil {
			return nil, err
		}
		return c, nil
	case strings.Contains(rawURL, "://") && !strings.HasPrefix(rawURL, "file://"):
		return nil, fmt.Errorf("unsupported cache url %q", rawURL)
	default:
		c, err := NewFileCache(strings.TrimPrefix(rawURL, "file://"))
		if err != nil {
			return nil, err
		}
		return c, nil
	}
}
