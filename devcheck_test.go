package devcheck

import (
	"context"
	"testing"

	. "github.com/fulldump/biff"
	goskema "github.com/reoring/goskema"
	g "github.com/reoring/goskema/dsl"
)

type User struct {
	Id   string `json:"id"`
	Name string `json:"name"`
}

func userSchema() goskema.Schema[User] {
	return g.ObjectOf[User]().
		Field("id", g.StringOf[string]()).Required().
		Field("name", g.StringOf[string]()).Required().
		UnknownStrict().
		MustBind()
}

func documentSchema() goskema.Schema[map[string]any] {
	return g.Object().
		Field("id", g.StringOf[string]()).
		Require("id").
		UnknownStrip().
		MustBuild()
}

func TestParseDisabledIsIdentity(t *testing.T) {

	// Setup
	user := User{Id: "1", Name: "Pablo"}

	// Run
	result, err := Parse(context.Background(), userSchema(), user, false)

	// Check
	AssertNil(err)
	AssertEqual(result, user)
}

func TestParseDisabledSkipsValidation(t *testing.T) {

	// Setup
	document := map[string]any{} // would never satisfy the schema

	// Run
	result, err := Parse(context.Background(), documentSchema(), document, false)

	// Check
	AssertNil(err)
	AssertEqualJson(result, document)
}

func TestParseEnabledAccepts(t *testing.T) {

	// Setup
	document := map[string]any{"id": "1"}

	// Run
	result, err := Parse(context.Background(), documentSchema(), document, true)

	// Check
	AssertNil(err)
	AssertEqual(result["id"], "1")
}

func TestParseEnabledRejects(t *testing.T) {

	// Run
	_, err := Parse(context.Background(), documentSchema(), map[string]any{}, true)

	// Check
	AssertNotNil(err)
	_, isIssues := err.(goskema.Issues)
	AssertEqual(isIssues, true)
}

func TestDecodeEnabledCoerces(t *testing.T) {

	// Setup
	payload := map[string]any{"id": "1", "name": "Pablo", "extra": true}

	// Run
	user, err := Decode[User](context.Background(), userSchema(), payload, true)

	// Check: schema rejects the unknown key, the gate propagates it as is
	AssertNotNil(err)

	// Run again without the stray key
	delete(payload, "extra")
	user, err = Decode[User](context.Background(), userSchema(), payload, true)

	// Check
	AssertNil(err)
	AssertEqual(user, User{Id: "1", Name: "Pablo"})
}

func TestDecodeDisabledPassesThrough(t *testing.T) {

	// Setup
	user := User{Id: "1", Name: "Pablo"}

	// Run
	result, err := Decode[User](context.Background(), userSchema(), user, false)

	// Check
	AssertNil(err)
	AssertEqual(result, user)
}

func TestDecodeDisabledRejectsWrongType(t *testing.T) {

	// Setup: a wire map is not a User, and with the gate off nothing coerces it
	payload := map[string]any{"id": "1", "name": "Pablo"}

	// Run
	user, err := Decode[User](context.Background(), userSchema(), payload, false)

	// Check
	AssertNotNil(err)
	AssertEqual(err.Error(), "passthrough: value is map[string]interface {}, not devcheck.User")
	AssertEqual(user, User{})
}

func TestWrapKeepsSchemaCapabilities(t *testing.T) {

	// Setup
	wrapped := Wrap(userSchema())

	// Run: the embedded schema still parses wire input
	user, errParse := wrapped.Parse(context.Background(), map[string]any{"id": "1", "name": "Sara"})

	// Run: the added entry point gates typed values
	same, errCheck := wrapped.Check(context.Background(), User{}, false)

	// Check
	AssertNil(errParse)
	AssertEqual(user.Name, "Sara")
	AssertNil(errCheck)
	AssertEqual(same, User{})
}

func TestCheckerEvaluatesConditionPerCall(t *testing.T) {

	// Setup
	calls := 0
	check := Checker[map[string]any](func() bool {
		calls++
		return calls > 1 // disabled on the first call only
	})
	invalid := map[string]any{}

	// Run
	_, errFirst := check(context.Background(), documentSchema(), invalid)
	_, errSecond := check(context.Background(), documentSchema(), invalid)

	// Check
	AssertNil(errFirst)
	AssertNotNil(errSecond)
	AssertEqual(calls, 2)
}
