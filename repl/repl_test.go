package repl

import (
	"bytes"
	"strings"
	"testing"

	"github.com/coltlang/coltfront/diag"
	"github.com/stretchr/testify/assert"
)

func TestRepl_ExecuteWithRecoveryReportsParseErrors(t *testing.T) {
	r := NewRepl("banner", "v0", "author", "---", "MIT", "colt >>> ", diag.Config{NoColor: true})
	var out bytes.Buffer

	r.executeWithRecovery(&out, "var mut x: i32 = ;")

	assert.Contains(t, out.String(), "error(s)")
}

func TestRepl_ExecuteWithRecoverySummarizesValidInput(t *testing.T) {
	r := NewRepl("banner", "v0", "author", "---", "MIT", "colt >>> ", diag.Config{NoColor: true})
	var out bytes.Buffer

	r.executeWithRecovery(&out, "var mut x: i32 = 1;")

	assert.Contains(t, out.String(), "VarDecl")
}

func TestRepl_ExecuteWithRecoveryNeverPanicsOnEmptyishInput(t *testing.T) {
	r := NewRepl("banner", "v0", "author", "---", "MIT", "colt >>> ", diag.Config{NoColor: true})
	var out bytes.Buffer

	assert.NotPanics(t, func() {
		r.executeWithRecovery(&out, ";")
	})
}

func TestRepl_PrintBannerInfoIncludesAllFields(t *testing.T) {
	r := NewRepl("MY_BANNER", "v1.2.3", "someone", "====", "MIT", "colt >>> ", diag.Config{NoColor: true})
	var out bytes.Buffer

	r.PrintBannerInfo(&out)

	rendered := out.String()
	assert.True(t, strings.Contains(rendered, "MY_BANNER"))
	assert.True(t, strings.Contains(rendered, "v1.2.3"))
	assert.True(t, strings.Contains(rendered, "someone"))
}
