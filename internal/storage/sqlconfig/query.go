package sqlconfig

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

// findOne runs q and maps the single row into T. A missing row is reported
// as (nil, nil) so callers can distinguish "not found" from failures.
func findOne[T any](ctx context.Context, exec bob.Executor, q bob.Query) (*T, error) {
	row, err := bob.One(ctx, exec, q, scan.StructMapper[T]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func findAll[T any](ctx context.Context, exec bob.Executor, q bob.Query) ([]*T, error) {
	rows, err := bob.All(ctx, exec, q, scan.StructMapper[T]())
	if err != nil {
		return nil, err
	}
	result := make([]*T, len(rows))
	for i := range rows {
		result[i] = &rows[i]
	}
	return result, nil
}

func insertReturningID(ctx context.Context, exec bob.Executor, q bob.Query) (uuid.UUID, error) {
	return bob.One(ctx, exec, q, scan.SingleColumnMapper[uuid.UUID])
}

// updateByID applies sets to the row with the given id and bumps updated_at.
// An empty set list still touches updated_at.
func updateByID(ctx context.Context, exec bob.Executor, table string, id uuid.UUID, sets []bob.Mod[*dialect.UpdateQuery]) error {
	mods := append([]bob.Mod[*dialect.UpdateQuery]{um.Table(table)}, sets...)
	mods = append(mods,
		um.SetCol("updated_at").To(psql.Raw("now()")),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	_, err := bob.Exec(ctx, exec, psql.Update(mods...))
	return err
}

func deleteByID(ctx context.Context, exec bob.Executor, table string, id uuid.UUID) error {
	_, err := bob.Exec(ctx, exec, psql.Delete(
		dm.From(table),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	))
	return err
}

func uuidArgs(ids []uuid.UUID) []any {
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	return args
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likePattern matches search as a literal substring under ILIKE's default
// backslash escape.
func likePattern(search string) string {
	return "%" + likeEscaper.Replace(search) + "%"
}
