package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/go-ddd-user-management/internal/domain/entity"
	"github.com/oksasatya/go-ddd-user-management/internal/domain/gateway"
	"github.com/oksasatya/go-ddd-user-management/internal/domain/valueobject"
	"github.com/oksasatya/go-ddd-user-management/pkg/apperror"
)

const uniqueViolation = "23505"

const userColumns = `id, name, email, password_hash, created_at`

// userRow mirrors one row of the users table.
type userRow struct {
	ID           string    `db:"id"`
	Name         string    `db:"name"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

func (r userRow) toEntity() (*entity.User, error) {
	email, err := valueobject.NewEmail(r.Email)
	if err != nil {
		return nil, fmt.Errorf("stored email for user %s: %w", r.ID, err)
	}
	return entity.NewUser(entity.UserProps{
		ID:        entity.NewIdentity(r.ID),
		Name:      r.Name,
		Email:     email,
		Password:  r.PasswordHash,
		CreatedAt: r.CreatedAt,
	})
}

// UserGateway is the Postgres-backed gateway.UserGateway.
type UserGateway struct {
	pool *pgxpool.Pool
}

func NewUserGateway(pool *pgxpool.Pool) *UserGateway {
	return &UserGateway{pool: pool}
}

func (g *UserGateway) Create(ctx context.Context, u *entity.User) (*entity.User, error) {
	_, err := g.pool.Exec(ctx, `
		INSERT INTO users (id, name, email, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, u.ID().String(), u.Name(), u.Email().String(), u.Password(), u.CreatedAt())
	if err != nil {
		return nil, mapWriteError("insert user", err)
	}
	return u, nil
}

func (g *UserGateway) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return g.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
}

func (g *UserGateway) FindByID(ctx context.Context, id string) (*entity.User, error) {
	return g.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE id::text = $1`, id)
}

func (g *UserGateway) findOne(ctx context.Context, query string, arg string) (*entity.User, error) {
	rows, err := g.pool.Query(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("query user: %w", err)
	}
	row, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[userRow])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}
	return row.toEntity()
}

func (g *UserGateway) ListAll(ctx context.Context, params gateway.ListParams) (gateway.Paginated[*entity.User], error) {
	page := gateway.Paginated[*entity.User]{Page: params.Page, Limit: params.Limit, Data: []*entity.User{}}

	if err := g.pool.QueryRow(ctx, `SELECT count(*) FROM users`).Scan(&page.Total); err != nil {
		return page, fmt.Errorf("count users: %w", err)
	}

	rows, err := g.pool.Query(ctx, `
		SELECT `+userColumns+`
		FROM users
		ORDER BY created_at, id
		LIMIT $1 OFFSET $2
	`, params.Limit, params.Offset())
	if err != nil {
		return page, fmt.Errorf("list users: %w", err)
	}
	records, err := pgx.CollectRows(rows, pgx.RowToStructByName[userRow])
	if err != nil {
		return page, fmt.Errorf("scan users: %w", err)
	}
	for _, rec := range records {
		u, err := rec.toEntity()
		if err != nil {
			return page, err
		}
		page.Data = append(page.Data, u)
	}
	return page, nil
}

func (g *UserGateway) Delete(ctx context.Context, id string) error {
	if _, err := g.pool.Exec(ctx, `DELETE FROM users WHERE id::text = $1`, id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

func (g *UserGateway) Save(ctx context.Context, u *entity.User) error {
	_, err := g.pool.Exec(ctx, `
		UPDATE users
		SET name = $1, email = $2, password_hash = $3, updated_at = now()
		WHERE id::text = $4
	`, u.Name(), u.Email().String(), u.Password(), u.ID().String())
	if err != nil {
		return mapWriteError("update user", err)
	}
	return nil
}

// mapWriteError turns a unique violation on the email column into the
// same BadRequest the use cases report for a taken address.
func mapWriteError(op string, err error) error {
	if isUniqueViolation(err) {
		return apperror.BadRequest("Email already in use")
	}
	return fmt.Errorf("%s: %w", op, err)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

var _ gateway.UserGateway = (*UserGateway)(nil)
