// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "robddtest", cmd.Use)
}

func TestRootCommandTakesNoArguments(t *testing.T) {
	cmd := NewRootCommand()
	cmd.SetArgs([]string{"extra-arg"})
	cmd.SetOut(&bytes.Buffer{})
	err := cmd.Execute()
	require.Error(t, err)
}

func TestRootCommandRunsAllScenarios(t *testing.T) {
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	err := cmd.Execute()
	require.NoError(t, err)
	assert.Contains(t, out.String(), "7/7 scenarios passed")
}
