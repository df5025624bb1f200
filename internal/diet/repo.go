package diet

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/fitplan/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrDietItemNotFound = errors.New("diet item not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, item Item) (_ *Item, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.diet.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if item.Meal == "" {
		return nil, errors.New("diet item meal empty")
	}
	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now()
	}

	rows, err := r.db.Query(
		ctx,
		`INSERT INTO diet_item (meal, description, position, created_at)
			VALUES ($1, $2, $3, $4)
		RETURNING id;`,
		item.Meal, item.Description, item.Position, item.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if !rows.Next() {
		return nil, errors.New("unexpected error [no rows next]")
	}

	var id int
	if err := rows.Scan(&id); err != nil {
		return nil, fmt.Errorf("rows scan: %w", err)
	}

	span.SetAttributes(attribute.Int("diet_item.id", id))

	item.ID = id
	return &item, nil
}

func (r *Repo) Update(ctx context.Context, item *Item) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.diet.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", item.ID))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE diet_item SET meal = $1, description = $2, position = $3 WHERE id = $4;`,
		item.Meal, item.Description, item.Position, item.ID,
	)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrDietItemNotFound
	}

	return nil
}

func (r *Repo) Delete(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.diet.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM diet_item WHERE id = $1`,
		id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrDietItemNotFound
	}
	return nil
}

func (r *Repo) ListAll(ctx context.Context) (_ []Item, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.diet.listall")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`
			SELECT id, meal, description, position, created_at
			FROM diet_item
			ORDER BY position ASC;`,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	items := make([]Item, 0)
	for rows.Next() {
		var id, position int
		var meal, description string
		var createdAt time.Time
		if err := rows.Scan(&id, &meal, &description, &position, &createdAt); err != nil {
			return nil, err
		}
		items = append(items, Item{
			ID:          id,
			Meal:        meal,
			Description: description,
			Position:    position,
			CreatedAt:   createdAt,
		})
	}

	return items, nil
}
