package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const listScript = `if [ "$2" = "--all" ]; then
cat <<'OUT'
 Id   Name    State
------------------------
 1    web     running
 -    db      shut off
OUT
else
cat <<'OUT'
 Id   Name    State
------------------------
 1    web     running
OUT
fi
`

func TestListCommand(t *testing.T) {
	bin := fakeVirsh(t, listScript)

	out, err := executeRoot(t, "list", "--virsh", bin)
	require.NoError(t, err)
	assert.Contains(t, out, "web")
	assert.NotContains(t, out, "db")

	out, err = executeRoot(t, "list", "--all", "-o", "yaml", "--virsh", bin)
	require.NoError(t, err)
	assert.Contains(t, out, "name: db")
	assert.Contains(t, out, "state: shut off")
}

func TestListCommandBadFormat(t *testing.T) {
	_, err := executeRoot(t, "list", "-o", "xml")
	assert.Error(t, err)
}

func TestVersionCommand(t *testing.T) {
	SetVersion("0.1.0")
	out, err := executeRoot(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "yalv version 0.1.0\n", out)
}
