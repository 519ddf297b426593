// Package export writes every user as JSON lines by paging through the
// ListAll use case.
package export

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	userapp "github.com/oksasatya/go-ddd-user-management/internal/application/user"
)

type ListUsersUseCase interface {
	Execute(ctx context.Context, in userapp.ListAllInput) userapp.PageResult
}

// Record is one exported line. Password hashes are not exported.
type Record struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type Exporter struct {
	List     ListUsersUseCase
	PageSize int
}

func NewExporter(list ListUsersUseCase, pageSize int) *Exporter {
	if pageSize <= 0 {
		pageSize = 100
	}
	return &Exporter{List: list, PageSize: pageSize}
}

// WriteJSONLines writes one Record per line to w and returns how many were
// written. It stops at the first short page or once Total is reached.
func (e *Exporter) WriteJSONLines(ctx context.Context, w io.Writer) (int, error) {
	enc := json.NewEncoder(w)
	written := 0
	for page := 1; ; page++ {
		if err := ctx.Err(); err != nil {
			return written, err
		}
		res := e.List.Execute(ctx, userapp.ListAllInput{Page: page, Limit: e.PageSize})
		if appErr, failed := res.LeftValue(); failed {
			return written, fmt.Errorf("list page %d: %w", page, appErr)
		}
		p, _ := res.RightValue()
		for _, u := range p.Data {
			rec := Record{ID: u.ID().String(), Name: u.Name(), Email: u.Email().String(), CreatedAt: u.CreatedAt().UTC()}
			if err := enc.Encode(rec); err != nil {
				return written, err
			}
			written++
		}
		if len(p.Data) < e.PageSize || written >= p.Total {
			return written, nil
		}
	}
}

// ObjectName builds a timestamped object path under prefix.
func ObjectName(prefix string, at time.Time) string {
	return fmt.Sprintf("%s/users-%s.jsonl", prefix, at.UTC().Format("20060102T150405Z"))
}
