package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"

	"github.com/oksasatya/go-ddd-user-management/internal/domain/entity"
)

// UserDocument is what gets indexed for a user. The password hash is
// never indexed.
type UserDocument struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

func documentOf(u *entity.User) UserDocument {
	return UserDocument{
		ID:        u.ID().String(),
		Name:      u.Name(),
		Email:     u.Email().String(),
		CreatedAt: u.CreatedAt(),
	}
}

// UserIndex reads and writes user documents in one Elasticsearch index.
type UserIndex struct {
	es    *elasticsearch.Client
	index string
}

func NewUserIndex(es *elasticsearch.Client, index string) *UserIndex {
	return &UserIndex{es: es, index: index}
}

const usersMapping = `{
  "mappings": {
    "properties": {
      "id":         {"type": "keyword"},
      "name":       {"type": "text", "fields": {"raw": {"type": "keyword"}}},
      "email":      {"type": "text", "analyzer": "simple", "fields": {"raw": {"type": "keyword"}}},
      "created_at": {"type": "date"}
    }
  }
}`

// EnsureIndex creates the index with its mapping when it does not exist.
func (x *UserIndex) EnsureIndex(ctx context.Context) error {
	res, err := x.es.Indices.Exists([]string{x.index}, x.es.Indices.Exists.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("check index: %w", err)
	}
	_ = res.Body.Close()
	if res.StatusCode == 200 {
		return nil
	}
	res, err = x.es.Indices.Create(x.index,
		x.es.Indices.Create.WithContext(ctx),
		x.es.Indices.Create.WithBody(strings.NewReader(usersMapping)),
	)
	if err != nil {
		return fmt.Errorf("create index: %w", err)
	}
	return checkResponse(res, "create index")
}

func (x *UserIndex) Index(ctx context.Context, u *entity.User) error {
	body, err := json.Marshal(documentOf(u))
	if err != nil {
		return err
	}
	res, err := x.es.Index(x.index, bytes.NewReader(body),
		x.es.Index.WithContext(ctx),
		x.es.Index.WithDocumentID(u.ID().String()),
	)
	if err != nil {
		return fmt.Errorf("index user: %w", err)
	}
	return checkResponse(res, "index user")
}

// Remove deletes the user's document. A missing document is not an error.
func (x *UserIndex) Remove(ctx context.Context, id string) error {
	res, err := x.es.Delete(x.index, id, x.es.Delete.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("remove user: %w", err)
	}
	if res.StatusCode == 404 {
		_ = res.Body.Close()
		return nil
	}
	return checkResponse(res, "remove user")
}

// Search runs a fuzzy multi_match over name and email.
func (x *UserIndex) Search(ctx context.Context, q string, size int) ([]UserDocument, error) {
	query := map[string]any{
		"size": size,
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":     strings.TrimSpace(q),
				"fields":    []string{"name^2", "email"},
				"fuzziness": "AUTO",
			},
		},
	}
	body, err := json.Marshal(query)
	if err != nil {
		return nil, err
	}
	res, err := x.es.Search(
		x.es.Search.WithContext(ctx),
		x.es.Search.WithIndex(x.index),
		x.es.Search.WithBody(bytes.NewReader(body)),
	)
	if err != nil {
		return nil, fmt.Errorf("search users: %w", err)
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() {
		return nil, responseError(res, "search users")
	}

	var out struct {
		Hits struct {
			Hits []struct {
				Source UserDocument `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}
	docs := make([]UserDocument, 0, len(out.Hits.Hits))
	for _, h := range out.Hits.Hits {
		docs = append(docs, h.Source)
	}
	return docs, nil
}

func checkResponse(res *esapi.Response, op string) error {
	defer func() { _ = res.Body.Close() }()
	if res.IsError() {
		return responseError(res, op)
	}
	return nil
}

func responseError(res *esapi.Response, op string) error {
	b, _ := io.ReadAll(io.LimitReader(res.Body, 1024))
	return fmt.Errorf("%s: elasticsearch %s: %s", op, res.Status(), strings.TrimSpace(string(b)))
}
