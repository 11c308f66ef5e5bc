package sqlconfig

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
)

const budgetsTable = "budgets"

var _ IBudgetTable = (*BudgetsTable)(nil)

type BudgetsTable struct {
	exec bob.Executor
}

func NewBudgetsTable(exec bob.Executor) *BudgetsTable {
	return &BudgetsTable{exec: exec}
}

func selectBudgets(mods ...bob.Mod[*dialect.SelectQuery]) bob.BaseQuery[*dialect.SelectQuery] {
	base := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(
			psql.Quote("b", "id"), psql.Quote("b", "category_id"), psql.Raw("c.name AS category_name"),
			psql.Quote("b", "name"), psql.Quote("b", "amount"), psql.Quote("b", "period_type"),
			psql.Quote("b", "start_date"), psql.Quote("b", "end_date"), psql.Quote("b", "is_active"),
			psql.Quote("b", "notes"), psql.Quote("b", "created_at"), psql.Quote("b", "updated_at"),
		),
		sm.From(budgetsTable).As("b"),
		sm.InnerJoin(categoriesTable).As("c").On(psql.Quote("c", "id").EQ(psql.Quote("b", "category_id"))),
	}
	return psql.Select(append(base, mods...)...)
}

func (t *BudgetsTable) FindByID(ctx context.Context, id uuid.UUID) (*Budget, error) {
	return findOne[Budget](ctx, t.exec, selectBudgets(
		sm.Where(psql.Quote("b", "id").EQ(psql.Arg(id))),
	))
}

func (t *BudgetsTable) Insert(ctx context.Context, create *BudgetCreate) (uuid.UUID, error) {
	q := psql.Insert(
		im.Into(budgetsTable, "category_id", "name", "amount", "period_type", "start_date", "end_date", "is_active", "notes"),
		im.Values(psql.Arg(
			create.CategoryID, create.Name, create.Amount, create.PeriodType,
			create.StartDate, create.EndDate, create.IsActive, create.Notes,
		)),
		im.Returning("id"),
	)
	return insertReturningID(ctx, t.exec, q)
}

func (t *BudgetsTable) Update(ctx context.Context, id uuid.UUID, update *BudgetUpdate) error {
	var sets []bob.Mod[*dialect.UpdateQuery]
	if v, ok := update.CategoryID.Get(); ok {
		sets = append(sets, um.SetCol("category_id").ToArg(v))
	}
	if v, ok := update.Name.Get(); ok {
		sets = append(sets, um.SetCol("name").ToArg(v))
	}
	if v, ok := update.Amount.Get(); ok {
		sets = append(sets, um.SetCol("amount").ToArg(v))
	}
	if v, ok := update.PeriodType.Get(); ok {
		sets = append(sets, um.SetCol("period_type").ToArg(v))
	}
	if v, ok := update.StartDate.Get(); ok {
		sets = append(sets, um.SetCol("start_date").ToArg(v))
	}
	if v, ok := update.EndDate.Get(); ok {
		sets = append(sets, um.SetCol("end_date").ToArg(v))
	}
	if v, ok := update.IsActive.Get(); ok {
		sets = append(sets, um.SetCol("is_active").ToArg(v))
	}
	if v, ok := update.Notes.Get(); ok {
		sets = append(sets, um.SetCol("notes").ToArg(v))
	}
	return updateByID(ctx, t.exec, budgetsTable, id, sets)
}

func (t *BudgetsTable) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(ctx, t.exec, budgetsTable, id)
}

// List returns budgets ordered by start date, newest first.
func (t *BudgetsTable) List(ctx context.Context, filter *BudgetFilter) ([]*Budget, error) {
	var queryMods []bob.Mod[*dialect.SelectQuery]
	if filter != nil {
		if filter.CategoryID != nil {
			queryMods = append(queryMods, sm.Where(psql.Quote("b", "category_id").EQ(psql.Arg(*filter.CategoryID))))
		}
		if filter.ActiveOnly {
			queryMods = append(queryMods, sm.Where(psql.Quote("b", "is_active").EQ(psql.Arg(true))))
		}
		if filter.ExcludeID != nil {
			queryMods = append(queryMods, sm.Where(psql.Quote("b", "id").NE(psql.Arg(*filter.ExcludeID))))
		}
		if filter.ActiveOn != nil {
			queryMods = append(queryMods,
				sm.Where(psql.Quote("b", "start_date").LTE(psql.Arg(*filter.ActiveOn))),
				sm.Where(psql.Quote("b", "end_date").GTE(psql.Arg(*filter.ActiveOn))),
			)
		}
		if filter.Limit > 0 {
			queryMods = append(queryMods, sm.Limit(filter.Limit+1))
		}
		if filter.Offset > 0 {
			queryMods = append(queryMods, sm.Offset(filter.Offset))
		}
	}
	queryMods = append(queryMods,
		sm.OrderBy(psql.Quote("b", "start_date")).Desc(),
		sm.OrderBy(psql.Quote("b", "name")).Asc(),
		sm.OrderBy(psql.Quote("b", "id")).Asc(),
	)
	return findAll[Budget](ctx, t.exec, selectBudgets(queryMods...))
}
