package ledger

import (
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func newID() uuid.UUID {
	return uuid.Must(uuid.NewV4())
}

func childOf(parent uuid.UUID) CategoryNode {
	return CategoryNode{ID: newID(), ParentID: uuid.NullUUID{UUID: parent, Valid: true}}
}

func TestAggregateCategoryIDs(t *testing.T) {
	food := CategoryNode{ID: newID()}
	groceries := childOf(food.ID)
	dining := childOf(food.ID)
	stranger := childOf(newID())

	ids := AggregateCategoryIDs(food, []CategoryNode{groceries, dining, stranger})
	assert.ElementsMatch(t, []uuid.UUID{food.ID, groceries.ID, dining.ID}, ids)

	assert.Equal(t, []uuid.UUID{groceries.ID}, AggregateCategoryIDs(groceries, []CategoryNode{dining}))
}

func TestRollUpCategoryTotals_Example(t *testing.T) {
	food := CategoryNode{ID: newID()}
	groceries := childOf(food.ID)
	dining := childOf(food.ID)

	rolled := RollUpCategoryTotals([]CategoryNode{food, groceries, dining}, map[uuid.UUID]CategoryTotal{
		groceries.ID: {Amount: d("300.00"), Count: 3},
		dining.ID:    {Amount: d("150.00"), Count: 2},
	})

	assert.True(t, rolled[food.ID].Amount.Equal(d("450.00")), "got %s", rolled[food.ID].Amount)
	assert.Equal(t, int64(5), rolled[food.ID].Count)
	assert.True(t, rolled[groceries.ID].Amount.Equal(d("300.00")))
	assert.True(t, rolled[dining.ID].Amount.Equal(d("150.00")))
}

func TestRollUpCategoryTotals_OrphanChildIgnored(t *testing.T) {
	orphan := childOf(newID())
	rolled := RollUpCategoryTotals([]CategoryNode{orphan}, map[uuid.UUID]CategoryTotal{
		orphan.ID: {Amount: d("5"), Count: 1},
	})
	assert.Len(t, rolled, 1)
	assert.True(t, rolled[orphan.ID].Amount.Equal(d("5")))
}

func TestRollUpCategoryTotals_ParentEqualsOwnPlusChildren(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		parent := CategoryNode{ID: newID()}
		nodes := []CategoryNode{parent}
		direct := map[uuid.UUID]CategoryTotal{}

		own := CategoryTotal{
			Amount: decimal.New(rapid.Int64Range(0, 1_000_000).Draw(t, "own"), -2),
			Count:  rapid.Int64Range(0, 100).Draw(t, "ownCount"),
		}
		direct[parent.ID] = own
		expected := own

		children := rapid.IntRange(0, 8).Draw(t, "children")
		for i := 0; i < children; i++ {
			child := childOf(parent.ID)
			nodes = append(nodes, child)
			total := CategoryTotal{
				Amount: decimal.New(rapid.Int64Range(0, 1_000_000).Draw(t, "child"), -2),
				Count:  rapid.Int64Range(0, 100).Draw(t, "childCount"),
			}
			direct[child.ID] = total
			expected = expected.Merge(total)
		}

		rolled := RollUpCategoryTotals(nodes, direct)
		if !rolled[parent.ID].Amount.Equal(expected.Amount) || rolled[parent.ID].Count != expected.Count {
			t.Fatalf("parent total %v, want %v", rolled[parent.ID], expected)
		}
	})
}
