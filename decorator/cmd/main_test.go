package main

import (
	"bytes"
	"testing"

	"github.com/go-leo/design-pattern/decorator"
	"github.com/go-leo/gox/errorx"
	jsoniter "github.com/json-iterator/go"
	"github.com/kinbiko/jsonassert"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd(&cli{logger: zap.NewNop()})
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRender(t *testing.T) {
	out, err := execute(t, "render", "--with", "tag,feature")
	require.NoError(t, err)
	assert.Equal(t, "Hello, world! [#summer] [Pinned]\n", out)

	out, err = execute(t, "render", "-p", "post", "-w", "feature", "-w", "tag")
	require.NoError(t, err)
	assert.Equal(t, "post [Pinned] [#summer]\n", out)
}

func TestRenderWithoutAugmentations(t *testing.T) {
	out, err := execute(t, "render", "--payload", "plain")
	require.NoError(t, err)
	assert.Equal(t, "plain\n", out)
}

func TestRenderJSON(t *testing.T) {
	out, err := execute(t, "render", "--with", "tag,feature", "--json")
	require.NoError(t, err)

	ja := jsonassert.New(t)
	ja.Assertf(out, `{
		"payload": "Hello, world!",
		"augmentations": ["tag", "feature"],
		"depth": 3,
		"content": "Hello, world! [#summer] [Pinned]"
	}`)

	expected := string(errorx.Ignore(jsoniter.Marshal(rendering{
		Payload:       "Hello, world!",
		Augmentations: []decorator.Kind{},
		Depth:         1,
		Content:       "Hello, world!",
	})))
	out, err = execute(t, "render", "--json")
	require.NoError(t, err)
	ja.Assertf(out, expected)
}

func TestRenderUnknownAugmentation(t *testing.T) {
	out, err := execute(t, "render", "--with", "tag,sticky")
	assert.ErrorIs(t, err, decorator.ErrUnknownAugmentation)
	assert.Empty(t, out)
}

func TestKinds(t *testing.T) {
	out, err := execute(t, "kinds")
	require.NoError(t, err)
	assert.Equal(t, "tag      \" [#summer]\"\nfeature  \" [Pinned]\"\n", out)
}
