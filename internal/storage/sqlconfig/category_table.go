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
	"github.com/stephenafamo/scan"
)

const categoriesTable = "categories"

// CategoriesTable provides access to the categories table.
type CategoriesTable struct {
	exec bob.Executor
}

var _ ICategoryTable = (*CategoriesTable)(nil)

func NewCategoriesTable(exec bob.Executor) *CategoriesTable {
	return &CategoriesTable{exec: exec}
}

func selectCategories(mods ...bob.Mod[*dialect.SelectQuery]) bob.BaseQuery[*dialect.SelectQuery] {
	base := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(
			psql.Quote("c", "id"), psql.Quote("c", "parent_id"),
			psql.Raw("COALESCE(p.name, '') AS parent_name"),
			psql.Quote("c", "name"), psql.Quote("c", "code"), psql.Quote("c", "description"),
			psql.Quote("c", "icon"), psql.Quote("c", "color"), psql.Quote("c", "is_active"),
			psql.Quote("c", "created_at"), psql.Quote("c", "updated_at"),
		),
		sm.From(categoriesTable).As("c"),
		sm.LeftJoin(categoriesTable).As("p").On(psql.Quote("p", "id").EQ(psql.Quote("c", "parent_id"))),
	}
	return psql.Select(append(base, mods...)...)
}

func (t *CategoriesTable) FindByID(ctx context.Context, id uuid.UUID) (*Category, error) {
	return findOne[Category](ctx, t.exec, selectCategories(
		sm.Where(psql.Quote("c", "id").EQ(psql.Arg(id))),
	))
}

func (t *CategoriesTable) FindByCode(ctx context.Context, code string) (*Category, error) {
	return findOne[Category](ctx, t.exec, selectCategories(
		sm.Where(psql.Quote("c", "code").EQ(psql.Arg(code))),
	))
}

func (t *CategoriesTable) Insert(ctx context.Context, create *CategoryCreate) (uuid.UUID, error) {
	q := psql.Insert(
		im.Into(categoriesTable, "parent_id", "name", "code", "description", "icon", "color", "is_active"),
		im.Values(psql.Arg(
			create.ParentID, create.Name, create.Code, create.Description, create.Icon, create.Color, create.IsActive,
		)),
		im.Returning("id"),
	)
	return insertReturningID(ctx, t.exec, q)
}

func (t *CategoriesTable) Update(ctx context.Context, id uuid.UUID, update *CategoryUpdate) error {
	var sets []bob.Mod[*dialect.UpdateQuery]
	if v, ok := update.ParentID.Get(); ok {
		sets = append(sets, um.SetCol("parent_id").ToArg(v))
	}
	if v, ok := update.Name.Get(); ok {
		sets = append(sets, um.SetCol("name").ToArg(v))
	}
	if v, ok := update.Code.Get(); ok {
		sets = append(sets, um.SetCol("code").ToArg(v))
	}
	if v, ok := update.Description.Get(); ok {
		sets = append(sets, um.SetCol("description").ToArg(v))
	}
	if v, ok := update.Icon.Get(); ok {
		sets = append(sets, um.SetCol("icon").ToArg(v))
	}
	if v, ok := update.Color.Get(); ok {
		sets = append(sets, um.SetCol("color").ToArg(v))
	}
	if v, ok := update.IsActive.Get(); ok {
		sets = append(sets, um.SetCol("is_active").ToArg(v))
	}
	return updateByID(ctx, t.exec, categoriesTable, id, sets)
}

func (t *CategoriesTable) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(ctx, t.exec, categoriesTable, id)
}

// List returns categories ordered with parents before their children's
// siblings, i.e. by name. See AccountsTable.List for the limit+1 convention.
func (t *CategoriesTable) List(ctx context.Context, filter *CategoryFilter) ([]*Category, error) {
	var queryMods []bob.Mod[*dialect.SelectQuery]
	if filter != nil {
		if filter.ActiveOnly {
			queryMods = append(queryMods, sm.Where(psql.Quote("c", "is_active").EQ(psql.Arg(true))))
		}
		switch {
		case filter.ParentID != nil:
			queryMods = append(queryMods, sm.Where(psql.Quote("c", "parent_id").EQ(psql.Arg(*filter.ParentID))))
		case filter.TopLevelOnly:
			queryMods = append(queryMods, sm.Where(psql.Quote("c", "parent_id").IsNull()))
		}
		if filter.Search != "" {
			pattern := likePattern(filter.Search)
			queryMods = append(queryMods, sm.Where(psql.Raw("(c.name ILIKE ? OR c.code ILIKE ? OR c.description ILIKE ?)", pattern, pattern, pattern)))
		}
		if filter.Limit > 0 {
			queryMods = append(queryMods, sm.Limit(filter.Limit+1))
		}
		if filter.Offset > 0 {
			queryMods = append(queryMods, sm.Offset(filter.Offset))
		}
	}
	queryMods = append(queryMods,
		sm.OrderBy(psql.Quote("c", "name")).Asc(),
		sm.OrderBy(psql.Quote("c", "id")).Asc(),
	)
	return findAll[Category](ctx, t.exec, selectCategories(queryMods...))
}

// CountChildren returns the number of categories whose parent is id.
func (t *CategoriesTable) CountChildren(ctx context.Context, id uuid.UUID) (int64, error) {
	q := psql.Select(
		sm.Columns(psql.Raw("COUNT(*)")),
		sm.From(categoriesTable),
		sm.Where(psql.Quote("parent_id").EQ(psql.Arg(id))),
	)
	return bob.One(ctx, t.exec, q, scan.SingleColumnMapper[int64])
}
