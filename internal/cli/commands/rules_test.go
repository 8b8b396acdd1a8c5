package commands

import (
	"bytes"
	"testing"

	"github.com/leapstack-labs/rflint/pkg/lint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeRules(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRulesCommand()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestNewRulesCommand(t *testing.T) {
	cmd := NewRulesCommand()

	assert.Equal(t, "rules [rule-id]", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.NotEmpty(t, cmd.Example, "Example should not be empty")
	assert.NotNil(t, cmd.Flags().Lookup("kind"))
}

func TestRulesCommand_ListAll(t *testing.T) {
	output, err := executeRules(t)
	require.NoError(t, err)

	for _, id := range []string{"LineTooLong", "TrailingBlankLines", "FileTooLong", "GlobalVariableNamingCheck"} {
		assert.Contains(t, output, id)
	}
	assert.Contains(t, output, "maxchars=100")
	assert.Contains(t, output, "General")
	assert.Contains(t, output, "4 rule(s)")
}

func TestRulesCommand_FilterByKind(t *testing.T) {
	t.Run("general", func(t *testing.T) {
		output, err := executeRules(t, "--kind", "general")
		require.NoError(t, err)
		assert.Contains(t, output, "LineTooLong")
	})

	t.Run("keyword has no rules", func(t *testing.T) {
		output, err := executeRules(t, "--kind", "keyword")
		require.NoError(t, err)
		assert.Contains(t, output, "No rules found")
	})
}

func TestRulesCommand_ShowSpecificRule(t *testing.T) {
	output, err := executeRules(t, "TrailingBlankLines")
	require.NoError(t, err)

	assert.Contains(t, output, "TrailingBlankLines")
	assert.Contains(t, output, "max_allowed")
	assert.Contains(t, output, "--configure TrailingBlankLines:<max_allowed>")
}

func TestRulesCommand_ShowRuleWithoutOptions(t *testing.T) {
	output, err := executeRules(t, "GlobalVariableNamingCheck")
	require.NoError(t, err)
	assert.Contains(t, output, "takes no options")
}

func TestRulesCommand_UnknownRule(t *testing.T) {
	_, err := executeRules(t, "NoSuchRule")
	require.Error(t, err)
	assert.ErrorIs(t, err, lint.ErrUnknownRule)
}

func TestOptionSummary(t *testing.T) {
	assert.Equal(t, "-", optionSummary(nil))

	info, ok := lint.GetRuleInfoByID("LineTooLong")
	require.True(t, ok)
	assert.Equal(t, "maxchars=100", optionSummary(info.Options))
}
