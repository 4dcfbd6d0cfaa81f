package collection

import (
	"context"
	"testing"

	. "github.com/fulldump/biff"

	"github.com/fulldump/devcheck"
)

func TestFilterByEquality(t *testing.T) {

	// Setup
	ops := memberOps()

	// Run
	positions, err := ops.Locate(context.Background(), members(), Filter[Member](map[string]any{
		"id": "b",
	}))

	// Check
	AssertNil(err)
	AssertEqual(positions, []int{1})
}

func TestFilterByOperator(t *testing.T) {

	// Setup
	ops := memberOps()

	// Run
	records, err := ops.Fetch(context.Background(), members(), Filter[Member](map[string]any{
		"age": map[string]any{"$ge": 30},
	}))

	// Check
	AssertNil(err)
	AssertEqual(records, []Member{{Id: "b", Age: 39}})
}

func TestFilterMatchesAllWhenEmpty(t *testing.T) {

	// Setup
	ops := memberOps()

	// Run
	positions, err := ops.Locate(context.Background(), members(), Filter[Member](map[string]any{}))

	// Check
	AssertNil(err)
	AssertEqual(positions, []int{0, 1})
}

func TestPredicateKeepsAscendingOrder(t *testing.T) {

	// Setup
	ops := memberOps()
	rows := []Member{
		{Id: "c", Age: 50},
		{Id: "a", Age: 24},
		{Id: "b", Age: 39},
	}

	// Run
	positions, err := ops.Locate(context.Background(), rows, Where(func(m Member) bool {
		return m.Age > 30
	}))

	// Check
	AssertNil(err)
	AssertEqual(positions, []int{0, 2})
}

func TestCustomIdField(t *testing.T) {

	// Setup
	ops := New[map[string]any](devcheck.Enabled(false), documentSchema()).WithIdField("email")
	rows := []map[string]any{
		{"email": "pablo@hotmail.com"},
		{"email": "sara@hotmail.com"},
	}

	// Run
	positions, err := ops.Locate(context.Background(), rows, ById[map[string]any]("sara@hotmail.com"))

	// Check
	AssertNil(err)
	AssertEqual(positions, []int{1})
}
