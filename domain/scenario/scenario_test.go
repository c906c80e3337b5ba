package scenario

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandSpec_Validate(t *testing.T) {
	tests := []struct {
		name    string
		spec    *CommandSpec
		wantErr error
	}{
		{"nil spec", nil, nil},
		{"simple", &CommandSpec{Type: CommandSimple, Payload: "Say Hi!"}, nil},
		{"simple with empty payload", &CommandSpec{Type: CommandSimple}, nil},
		{"simple with context", &CommandSpec{Type: CommandSimple, Payload: "p", A: "a"}, ErrUnusedFields},
		{"complex", &CommandSpec{Type: CommandComplex, A: "Send email", B: "Save report"}, nil},
		{"complex with empty b", &CommandSpec{Type: CommandComplex, A: "Send email"}, nil},
		{"complex with payload", &CommandSpec{Type: CommandComplex, A: "a", B: "b", Payload: "p"}, ErrUnusedFields},
		{"unknown type", &CommandSpec{Type: "macro"}, ErrUnknownType},
		{"empty type", &CommandSpec{}, ErrUnknownType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.spec.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestScenario_Validate(t *testing.T) {
	sc := &Scenario{
		Name:     "broken",
		OnFinish: &CommandSpec{Type: CommandComplex, A: "a", Payload: "stray"},
	}

	err := sc.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnusedFields))
	assert.Contains(t, err.Error(), "onFinish")

	assert.ErrorIs(t, (&Scenario{}).Validate(), ErrMissingName)
	assert.NoError(t, (&Scenario{Name: "empty"}).Validate())
}

func TestScenario_SlotCount(t *testing.T) {
	simple := &CommandSpec{Type: CommandSimple, Payload: "p"}

	tests := []struct {
		name     string
		scenario *Scenario
		expected int
	}{
		{"none", &Scenario{Name: "n"}, 0},
		{"start only", &Scenario{Name: "n", OnStart: simple}, 1},
		{"finish only", &Scenario{Name: "n", OnFinish: simple}, 1},
		{"both", &Scenario{Name: "n", OnStart: simple, OnFinish: simple}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.scenario.SlotCount())
		})
	}
}

const helloYAML = `
name: hello
description: greets, then hands work to a receiver
onStart:
  type: simple
  payload: "Say Hi!"
onFinish:
  type: complex
  a: "Send email"
  b: "Save report"
`

func TestLoader_LoadFromFS(t *testing.T) {
	fsys := fstest.MapFS{
		"scenarios/hello.yaml":    {Data: []byte(helloYAML)},
		"scenarios/quiet.yaml":    {Data: []byte("name: quiet\n")},
		"scenarios/README.md":     {Data: []byte("ignored")},
		"scenarios/nested/x.yaml": {Data: []byte("name: nested\n")},
	}

	reg := NewRegistry()
	require.NoError(t, NewLoader(reg).LoadFromFS(fsys))

	assert.Equal(t, []string{"hello", "quiet"}, reg.List())

	hello := reg.Get("hello")
	require.NotNil(t, hello)
	assert.Equal(t, "greets, then hands work to a receiver", hello.Description)
	assert.Equal(t, &CommandSpec{Type: CommandSimple, Payload: "Say Hi!"}, hello.OnStart)
	assert.Equal(t, &CommandSpec{Type: CommandComplex, A: "Send email", B: "Save report"}, hello.OnFinish)

	quiet := reg.Get("quiet")
	require.NotNil(t, quiet)
	assert.Nil(t, quiet.OnStart)
	assert.Nil(t, quiet.OnFinish)
}

func TestLoader_LoadFromFS_Errors(t *testing.T) {
	tests := []struct {
		name string
		fsys fstest.MapFS
	}{
		{"missing directory", fstest.MapFS{}},
		{"invalid yaml", fstest.MapFS{"scenarios/bad.yaml": {Data: []byte("name: [unclosed")}}},
		{"invalid command", fstest.MapFS{"scenarios/bad.yaml": {Data: []byte("name: bad\nonStart:\n  type: nope\n")}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := NewRegistry()
			assert.Error(t, NewLoader(reg).LoadFromFS(tt.fsys))
			assert.Equal(t, 0, reg.Count())
		})
	}
}

func TestLoader_LoadBytes_KeyPresence(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		want    *CommandSpec
		wantErr error
	}{
		{
			"empty payload present",
			"name: s\nonStart:\n  type: simple\n  payload: \"\"\n",
			&CommandSpec{Type: CommandSimple},
			nil,
		},
		{
			"empty context present",
			"name: s\nonStart:\n  type: complex\n  a: \"\"\n  b: \"\"\n",
			&CommandSpec{Type: CommandComplex},
			nil,
		},
		{
			"payload missing",
			"name: s\nonStart:\n  type: simple\n",
			nil,
			ErrMissingPayload,
		},
		{
			"b missing",
			"name: s\nonStart:\n  type: complex\n  a: x\n",
			nil,
			ErrMissingContext,
		},
		{
			"empty payload on complex",
			"name: s\nonStart:\n  type: complex\n  a: x\n  b: y\n  payload: \"\"\n",
			nil,
			ErrUnusedFields,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := NewRegistry()
			sc, err := NewLoader(reg).LoadBytes([]byte(tt.yaml))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.False(t, reg.Exists("s"))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, sc.OnStart)
		})
	}
}

func TestLoader_LoadBytes(t *testing.T) {
	reg := NewRegistry()

	sc, err := NewLoader(reg).LoadBytes([]byte(helloYAML))
	require.NoError(t, err)
	assert.Equal(t, "hello", sc.Name)
	assert.True(t, reg.Exists("hello"))
}

func TestRegistry(t *testing.T) {
	reg := NewRegistry()
	assert.Equal(t, 0, reg.Count())
	assert.Nil(t, reg.Get("missing"))

	reg.Register(&Scenario{Name: "b"})
	reg.Register(&Scenario{Name: "a"})
	reg.Register(&Scenario{Name: "a", Description: "replaced"})

	assert.Equal(t, 2, reg.Count())
	assert.Equal(t, []string{"a", "b"}, reg.List())
	assert.Equal(t, "replaced", reg.Get("a").Description)
	assert.False(t, reg.Exists("c"))
}
