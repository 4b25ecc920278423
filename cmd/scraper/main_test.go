package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/namongk/fast-linkedin-scraper/internal/scraper"
	"github.com/namongk/fast-linkedin-scraper/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--log-level", "error"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestConfigCommand(t *testing.T) {
	out, err := execute(t, "config")
	require.NoError(t, err)
	assert.Contains(t, out, "user_agent:")
	assert.Contains(t, out, "--disable-blink-features=AutomationControlled")
	assert.Contains(t, out, "wait_timeout: 5s")
}

func TestConfigArgsCommand(t *testing.T) {
	out, err := execute(t, "config", "args")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 14)
	assert.Equal(t, "--headless", lines[0])
	assert.Equal(t, "--no-sandbox", lines[1])
	assert.Equal(t, "--disable-renderer-backgrounding", lines[11])
	assert.Equal(t, "--window-size=1920,1080", lines[12])
	assert.True(t, strings.HasPrefix(lines[13], "--user-agent=Mozilla/5.0"))
	assert.NotContains(t, out, "user-data-dir")
}

func TestConfigFileFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("scraper:\n  person_fields: all\n"), 0o644))

	out, err := execute(t, "--config", path, "--format", "json", "plan", "person", "https://www.linkedin.com/in/jane-doe")
	require.NoError(t, err)

	var plan scraper.Plan
	require.NoError(t, json.Unmarshal([]byte(out), &plan))
	assert.Len(t, plan.Steps, 7)
}

func TestPlanPersonCommand(t *testing.T) {
	out, err := execute(t, "--format", "json", "plan", "person", "https://www.linkedin.com/in/jane-doe", "--fields", "basic_info|education")
	require.NoError(t, err)

	var plan scraper.Plan
	require.NoError(t, json.Unmarshal([]byte(out), &plan))
	assert.Equal(t, models.TargetPerson, plan.Target.Kind)
	require.Len(t, plan.Steps, 2)
	assert.Equal(t, scraper.SectionEducation, plan.Steps[1].Section)
}

func TestPlanCompanyCommand(t *testing.T) {
	out, err := execute(t, "plan", "company", "https://www.linkedin.com/company/acme", "--fields", "all", "--max-pages", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "affiliated_pages")
	assert.Contains(t, out, "5 steps")
}

func TestCommandErrors(t *testing.T) {
	_, err := execute(t, "plan", "person", "https://www.linkedin.com/in/jane-doe", "--fields", "skills")
	assert.ErrorIs(t, err, models.ErrUnknownField)

	_, err = execute(t, "plan", "company", "not a url")
	assert.ErrorIs(t, err, scraper.ErrInvalidTarget)

	_, err = execute(t, "run")
	assert.ErrorContains(t, err, "--input is required")

	empty := filepath.Join(t.TempDir(), "targets.txt")
	require.NoError(t, os.WriteFile(empty, []byte("# nothing\n"), 0o644))
	_, err = execute(t, "run", "--input", empty)
	assert.ErrorContains(t, err, "no targets")
}
