package commands

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetFlags points the global flags at the testdata fixture.
func resetFlags(format string) {
	metadataPath = "testdata/metadata.json"
	outputFormat = format
	verbose = false
	noColor = true
}

func TestInspectCommand(t *testing.T) {
	t.Run("has correct usage", func(t *testing.T) {
		cmd := NewInspectCommand()
		assert.Equal(t, "inspect", cmd.Use)
		assert.NotEmpty(t, cmd.Short)
		assert.NotEmpty(t, cmd.Long)
		assert.NotEmpty(t, cmd.Example)
	})

	t.Run("registers all subcommands", func(t *testing.T) {
		cmd := NewInspectCommand()
		names := map[string]bool{}
		for _, sub := range cmd.Commands() {
			names[strings.Fields(sub.Use)[0]] = true
		}
		for _, want := range []string{"overview", "pallets", "pallet", "calls", "constants", "storage", "events", "errors"} {
			assert.True(t, names[want], "missing subcommand %s", want)
		}
	})
}

func TestInspectOverviewCommand(t *testing.T) {
	t.Run("renders entries in source order", func(t *testing.T) {
		resetFlags("text")
		cmd := newInspectOverviewCommand()
		var buf bytes.Buffer
		cmd.SetOut(&buf)

		require.NoError(t, cmd.RunE(cmd, nil))
		out := buf.String()

		balances := strings.Index(out, "Balances")
		transfer := strings.Index(out, " c  transfer")
		insufficient := strings.Index(out, " err  InsufficientBalance")
		require.GreaterOrEqual(t, balances, 0)
		require.GreaterOrEqual(t, transfer, 0)
		require.GreaterOrEqual(t, insufficient, 0)
		assert.Less(t, balances, transfer)
		assert.Less(t, transfer, insufficient)
	})

	t.Run("json format emits structured snapshot", func(t *testing.T) {
		resetFlags("json")
		cmd := newInspectOverviewCommand()
		var buf bytes.Buffer
		cmd.SetOut(&buf)

		require.NoError(t, cmd.RunE(cmd, nil))

		var snap snapshot
		require.NoError(t, json.Unmarshal(buf.Bytes(), &snap))
		assert.Len(t, snap.Pallets, 3)
		assert.Len(t, snap.Errors, 1)
		assert.Equal(t, "InsufficientBalance", snap.Errors[0].Name)
	})

	t.Run("fails on invalid snapshot without partial output", func(t *testing.T) {
		resetFlags("text")
		metadataPath = "testdata/duplicate.json"
		cmd := newInspectOverviewCommand()
		var buf bytes.Buffer
		cmd.SetOut(&buf)

		err := cmd.RunE(cmd, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate pallet")
		assert.Empty(t, buf.String())
	})
}

func TestInspectPalletsCommand(t *testing.T) {
	t.Run("table format lists every pallet with counts", func(t *testing.T) {
		resetFlags("table")
		cmd := newInspectPalletsCommand()
		var buf bytes.Buffer
		cmd.SetOut(&buf)

		require.NoError(t, cmd.RunE(cmd, nil))
		out := buf.String()

		assert.Contains(t, out, "Pallet")
		assert.Contains(t, out, "Index")
		assert.Contains(t, out, "System")
		assert.Contains(t, out, "Balances")
		assert.Contains(t, out, "Sudo")
	})

	t.Run("json format has accurate counts", func(t *testing.T) {
		resetFlags("json")
		cmd := newInspectPalletsCommand()
		var buf bytes.Buffer
		cmd.SetOut(&buf)

		require.NoError(t, cmd.RunE(cmd, nil))

		var summaries []PalletSummary
		require.NoError(t, json.Unmarshal(buf.Bytes(), &summaries))
		require.Len(t, summaries, 3)

		system := summaries[0]
		assert.Equal(t, "System", system.Name)
		assert.Equal(t, 2, system.StorageCount)
		assert.Equal(t, 2, system.CallCount)
		assert.Equal(t, 1, system.ConstantCount)
		assert.Equal(t, 1, system.EventCount)
		assert.Equal(t, 0, system.ErrorCount)

		sudo := summaries[2]
		assert.Equal(t, "Sudo", sudo.Name)
		assert.Equal(t, 0, sudo.CallCount)
	})

	t.Run("text format renders pallet blocks", func(t *testing.T) {
		resetFlags("text")
		cmd := newInspectPalletsCommand()
		var buf bytes.Buffer
		cmd.SetOut(&buf)

		require.NoError(t, cmd.RunE(cmd, nil))
		assert.Contains(t, buf.String(), "Pallet: 'Balances'")
		assert.Contains(t, buf.String(), "Pallet id: 5")
	})
}

func TestInspectPalletCommand(t *testing.T) {
	t.Run("requires exactly one argument", func(t *testing.T) {
		cmd := newInspectPalletCommand()
		assert.Error(t, cmd.Args(cmd, nil))
		assert.NoError(t, cmd.Args(cmd, []string{"Balances"}))
		assert.Error(t, cmd.Args(cmd, []string{"Balances", "System"}))
	})

	t.Run("renders pallet detail", func(t *testing.T) {
		resetFlags("text")
		cmd := newInspectPalletCommand()
		var buf bytes.Buffer
		cmd.SetOut(&buf)

		require.NoError(t, cmd.RunE(cmd, []string{"System"}))
		out := buf.String()

		assert.Contains(t, out, "System (index 0)")
		assert.Contains(t, out, "Storage (2):")
		assert.Contains(t, out, "Account")
		assert.Contains(t, out, "Calls (2):")
		assert.Contains(t, out, "remark")
	})

	t.Run("json detail includes events and errors", func(t *testing.T) {
		resetFlags("json")
		cmd := newInspectPalletCommand()
		var buf bytes.Buffer
		cmd.SetOut(&buf)

		require.NoError(t, cmd.RunE(cmd, []string{"Balances"}))

		var detail PalletDetail
		require.NoError(t, json.Unmarshal(buf.Bytes(), &detail))
		assert.Equal(t, uint8(5), detail.Pallet.Index)
		require.Len(t, detail.Events, 1)
		assert.Equal(t, "Transfer", detail.Events[0].Name)
		require.Len(t, detail.Errors, 1)
		assert.Equal(t, "balance too low", detail.Errors[0].Description)
	})

	t.Run("unknown pallet lists available ones", func(t *testing.T) {
		resetFlags("text")
		cmd := newInspectPalletCommand()
		var buf bytes.Buffer
		cmd.SetOut(&buf)

		err := cmd.RunE(cmd, []string{"Staking"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "pallet not found")
		assert.Contains(t, buf.String(), "Available pallets:")
		assert.Contains(t, buf.String(), "Balances")
	})
}

func TestInspectCallsCommand(t *testing.T) {
	t.Run("skips pallets without calls", func(t *testing.T) {
		resetFlags("text")
		cmd := newInspectCallsCommand()
		var buf bytes.Buffer
		cmd.SetOut(&buf)

		require.NoError(t, cmd.RunE(cmd, nil))
		out := buf.String()

		assert.Contains(t, out, "Calls for Pallet: System")
		assert.Contains(t, out, "Name: transfer, index 0")
		assert.NotContains(t, out, "Sudo")
	})

	t.Run("json groups calls per pallet", func(t *testing.T) {
		resetFlags("json")
		cmd := newInspectCallsCommand()
		var buf bytes.Buffer
		cmd.SetOut(&buf)

		require.NoError(t, cmd.RunE(cmd, nil))

		var groups []PalletCalls
		require.NoError(t, json.Unmarshal(buf.Bytes(), &groups))
		require.Len(t, groups, 2)
		assert.Equal(t, "System", groups[0].Pallet)
		assert.Equal(t, "Balances", groups[1].Pallet)
	})
}

func TestInspectStorageCommand(t *testing.T) {
	resetFlags("text")
	cmd := newInspectStorageCommand()
	var buf bytes.Buffer
	cmd.SetOut(&buf)

	require.NoError(t, cmd.RunE(cmd, nil))
	out := buf.String()

	assert.Contains(t, out, "Storages for Pallet: System")
	assert.Contains(t, out, "Modifier: Default")
	assert.NotContains(t, out, "Balances")
}

func TestInspectConstantsCommand(t *testing.T) {
	resetFlags("text")
	cmd := newInspectConstantsCommand()
	var buf bytes.Buffer
	cmd.SetOut(&buf)

	require.NoError(t, cmd.RunE(cmd, nil))
	out := buf.String()

	assert.Contains(t, out, "Constants for Pallet: System")
	assert.Contains(t, out, "Name: BlockLength, Type #10, Value [1 0]")
	assert.NotContains(t, out, "Sudo")
}

func TestInspectEventsCommand(t *testing.T) {
	t.Run("renders a section for every pallet", func(t *testing.T) {
		resetFlags("text")
		cmd := newInspectEventsCommand()
		var buf bytes.Buffer
		cmd.SetOut(&buf)

		require.NoError(t, cmd.RunE(cmd, nil))
		out := buf.String()

		assert.Contains(t, out, "Events for Pallet: Sudo")
		assert.Contains(t, out, "Variant: Transfer(from: #0, to: #0, amount: #6)")
	})

	t.Run("json includes empty groups", func(t *testing.T) {
		resetFlags("json")
		cmd := newInspectEventsCommand()
		var buf bytes.Buffer
		cmd.SetOut(&buf)

		require.NoError(t, cmd.RunE(cmd, nil))

		var groups []PalletEvents
		require.NoError(t, json.Unmarshal(buf.Bytes(), &groups))
		require.Len(t, groups, 3)
		assert.Empty(t, groups[2].Events)
	})
}

func TestInspectErrorsCommand(t *testing.T) {
	resetFlags("text")
	cmd := newInspectErrorsCommand()
	var buf bytes.Buffer
	cmd.SetOut(&buf)

	require.NoError(t, cmd.RunE(cmd, nil))
	out := buf.String()

	assert.Contains(t, out, "Errors for Pallet: System")
	assert.Contains(t, out, "Name: InsufficientBalance")
	assert.Contains(t, out, `Description: "balance too low"`)
}

func TestInspectCommand_MissingSnapshot(t *testing.T) {
	resetFlags("text")
	metadataPath = "testdata/nope.json"
	cmd := newInspectOverviewCommand()
	var buf bytes.Buffer
	cmd.SetOut(&buf)

	err := cmd.RunE(cmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read metadata file")
}
