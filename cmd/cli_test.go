package cmd

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBountyListShowsSeededBoard(t *testing.T) {
	stdout, _, err := executeCLI(t, t.TempDir(), "bounty", "list")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Bounty Board")
	assert.Contains(t, stdout, "bounties: 3")
	assert.Contains(t, stdout, "wallet: disconnected")
	assert.Contains(t, stdout, "[OPEN]")
	assert.Contains(t, stdout, "[IN PROGRESS]")
	assert.Contains(t, stdout, "[COMPLETED]")
}

func TestBountyListFilter(t *testing.T) {
	stdout, _, err := executeCLI(t, t.TempDir(), "bounty", "list", "--filter", "solidity")
	require.NoError(t, err)
	assert.Contains(t, stdout, "bounties: 1")
	assert.Contains(t, stdout, "Add batch release to the escrow contract")
}

func TestBountyListJSONOutput(t *testing.T) {
	stdout, _, err := executeCLI(t, t.TempDir(), "bounty", "list", "--json")
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(stdout)))
	assert.Contains(t, stdout, "\"Status\": \"OPEN\"")
}

func TestBountyListTOMLOutput(t *testing.T) {
	stdout, _, err := executeCLI(t, t.TempDir(), "bounty", "list", "--toml")
	require.NoError(t, err)
	assert.Contains(t, stdout, "[[bounties]]")
	assert.Contains(t, stdout, "status = 'IN_PROGRESS'")
	assert.Contains(t, stdout, "amount_usdc = '800'")
}

func TestBountyShowDetailedView(t *testing.T) {
	stdout, _, err := executeCLI(t, t.TempDir(), "bounty", "show", "2")
	require.NoError(t, err)
	assert.Contains(t, stdout, "[IN PROGRESS]")
	assert.Contains(t, stdout, "maintainer: 0x71C...9A21")
	assert.Contains(t, stdout, "worker:")
}

func TestBountyShowUnknownID(t *testing.T) {
	_, _, err := executeCLI(t, t.TempDir(), "bounty", "show", "99")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bounty not found")
}

func TestBountyCreateWithoutWalletUsesSentinelMaintainer(t *testing.T) {
	run := newTestCLI(t, t.TempDir())

	stdout, _, err := run(
		"bounty", "create",
		"--title", "Fix login bug",
		"--amount", "300",
		"--tag", "bug",
		"--tag", "auth",
	)
	require.NoError(t, err)
	assert.Contains(t, stdout, "created bounty #4 \"Fix login bug\" [OPEN] $300 USDC")
	assert.Contains(t, stdout, "escrow tx: 0xsim-")

	shown, _, err := run("bounty", "show", "4")
	require.NoError(t, err)
	assert.Contains(t, shown, "maintainer: 0xSimulatedUser")
}

func TestBountyCreateDefaultsTitle(t *testing.T) {
	stdout, _, err := executeCLI(t, t.TempDir(), "bounty", "create", "--amount", "50")
	require.NoError(t, err)
	assert.Contains(t, stdout, "\"New Bounty\"")
}

func TestBountyCreateRejectsNegativeAmount(t *testing.T) {
	_, _, err := executeCLI(t, t.TempDir(), "bounty", "create", "--title", "Bad", "--amount=-5")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bounty amount must not be negative")
}

func TestBountyCreateConnectedMaintainer(t *testing.T) {
	run := newTestCLI(t, t.TempDir())

	stdout, _, err := run("bounty", "create", "--connect", "--title", "Funded", "--amount", "120")
	require.NoError(t, err)
	assert.Contains(t, stdout, "created bounty #4")

	shown, _, err := run("bounty", "show", "4")
	require.NoError(t, err)
	assert.Contains(t, shown, "maintainer: 0x71C...9A21")
}

func TestBountyClaimRequiresWallet(t *testing.T) {
	run := newTestCLI(t, t.TempDir())

	_, _, err := run("bounty", "claim", "3")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "wallet not connected")

	// The guard leaves the bounty untouched.
	stdout, _, err := run("bounty", "show", "3", "--json")
	require.NoError(t, err)
	assert.Contains(t, stdout, "\"Status\": \"OPEN\"")
	assert.Contains(t, stdout, "\"WorkerAddress\": \"\"")
}

func TestBountyClaimWithConnect(t *testing.T) {
	stdout, _, err := executeCLI(t, t.TempDir(), "bounty", "claim", "3", "--connect")
	require.NoError(t, err)
	assert.Contains(t, stdout, "claimed bounty #3")
	assert.Contains(t, stdout, "[IN_PROGRESS]")
	assert.Contains(t, stdout, "worker: 0x71C...9A21")
}

func TestBountyReleaseBySeededMaintainer(t *testing.T) {
	// Bounty 2 is seeded in progress with the simulated address as maintainer.
	stdout, _, err := executeCLI(t, t.TempDir(), "bounty", "release", "2", "--connect")
	require.NoError(t, err)
	assert.Contains(t, stdout, "released bounty #2")
	assert.Contains(t, stdout, "[COMPLETED]")
	assert.Contains(t, stdout, "worker: 0xdA4...f83c")
}

func TestBountyReleaseByNonMaintainer(t *testing.T) {
	// Bounty 3 is maintained by a different seeded address.
	_, _, err := executeCLI(t, t.TempDir(), "bounty", "release", "3", "--connect")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "only the maintainer may release")
}

func TestBountyReleaseRequiresInProgress(t *testing.T) {
	run := newTestCLI(t, t.TempDir())

	_, _, err := run("bounty", "create", "--connect", "--title", "Still open", "--amount", "10")
	require.NoError(t, err)

	_, _, err = run("bounty", "release", "4")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid bounty status transition")
}

func TestAnalyzeWithoutKeySimulates(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")

	stdout, _, err := executeCLI(t, t.TempDir(), "analyze", "--text", "Crash when saving settings")
	require.NoError(t, err)
	assert.Contains(t, stdout, "title:      Manual Issue Entry")
	assert.Contains(t, stdout, "price:      $100 USDC")
	assert.Contains(t, stdout, "tags:       Unknown")
}

func TestAnalyzeAgainstStubServer(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"{\"title\":\"Fix settings crash\",\"summary\":\"One sentence.\",\"suggestedPrice\":250,\"difficulty\":\"Medium\",\"tags\":[\"bug\"]}"}]}}]}`))
	}))
	defer server.Close()

	t.Setenv("BB_GEMINI_BASE_URL", server.URL)
	t.Setenv("GEMINI_API_KEY", "test-key")

	stdout, _, err := executeCLI(t, t.TempDir(), "analyze", "--text", "Crash when saving settings", "--json")
	require.NoError(t, err)
	assert.Contains(t, stdout, "\"Title\": \"Fix settings crash\"")
	assert.Contains(t, stdout, "\"SuggestedPrice\": 250")
}

func TestCreateWithAnalyzePrefillsBlankFields(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")

	stdout, _, err := executeCLI(t, t.TempDir(),
		"bounty", "create",
		"--description", "Crash when saving settings",
		"--analyze",
	)
	require.NoError(t, err)
	// Without an API key the simulated suggestion fills title and amount.
	assert.Contains(t, stdout, "\"Manual Issue Entry\"")
	assert.Contains(t, stdout, "$100 USDC")
}

func TestWalletConnectAndStatus(t *testing.T) {
	run := newTestCLI(t, t.TempDir())

	stdout, _, err := run("wallet", "connect")
	require.NoError(t, err)
	assert.Contains(t, stdout, "connected 0x71C...9A21 (balance 5000 USDC)")

	stdout, _, err = run("wallet", "status")
	require.NoError(t, err)
	assert.Contains(t, stdout, "wallet: 0x71C...9A21 (balance 5000 USDC)")
}

func TestWalletStatusDisconnected(t *testing.T) {
	stdout, _, err := executeCLI(t, t.TempDir(), "wallet", "status")
	require.NoError(t, err)
	assert.Contains(t, stdout, "wallet: disconnected")
}

func TestConfigOverridesWalletIdentity(t *testing.T) {
	home := t.TempDir()
	configDir := filepath.Join(home, ".config", "bountyboard")
	require.NoError(t, os.MkdirAll(configDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.toml"), []byte(`[wallet]
address = "0xCAFE...0001"
balance_usdc = "250"
connect_delay_ms = 0
`), 0o600))

	stdout, _, err := executeCLI(t, home, "wallet", "connect")
	require.NoError(t, err)
	assert.Contains(t, stdout, "connected 0xCAFE...0001 (balance 250 USDC)")
}

func TestDocsContractTopic(t *testing.T) {
	stdout, _, err := executeCLI(t, t.TempDir(), "docs", "contract")
	require.NoError(t, err)
	assert.Contains(t, stdout, "BountyEscrow")
}

func TestVersionCommand(t *testing.T) {
	stdout, _, err := executeCLI(t, t.TempDir(), "version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "dev")
}

// newTestCLI builds one root command so repository state survives across
// invocations within a test, mirroring one interactive session.
func newTestCLI(t *testing.T, home string) func(args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", home)
	t.Setenv("BB_CONNECT_DELAY_MS", "0")

	root := newRootCmd()
	return func(args ...string) (string, string, error) {
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		root.SetOut(stdout)
		root.SetErr(stderr)
		root.SetArgs(args)

		err := root.Execute()
		return stdout.String(), stderr.String(), err
	}
}

func executeCLI(t *testing.T, home string, args ...string) (string, string, error) {
	t.Helper()
	return newTestCLI(t, home)(args...)
}
