package metrics

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/datatug/vfstug/pkg/commands"
	"github.com/datatug/vfstug/pkg/items"
	"github.com/datatug/vfstug/pkg/session"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	t.Parallel()
	c := New(false)
	c.CommandDone("paste", "ok")
	c.CommandDone("paste", "ok")
	c.CommandDone("move", "rejected")
	c.Pasted("copy")
	c.SetItems(12)

	assert.Equal(t, 2.0, testutil.ToFloat64(c.commandsTotal.WithLabelValues("paste", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.commandsTotal.WithLabelValues("move", "rejected")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.pasteTotal.WithLabelValues("copy")))
	assert.Equal(t, 12.0, testutil.ToFloat64(c.items))
}

func TestCollector_WiredToDispatcher(t *testing.T) {
	t.Parallel()
	c := New(false)
	store, err := items.Load(items.DemoSeed(), items.WithObserver(c.SetItems))
	require.NoError(t, err)
	d := commands.NewDispatcher(session.New(store), commands.WithRecorder(c))

	ctx := context.Background()
	_, err = d.Dispatch(ctx, commands.CopyToClipboard{IDs: []string{"file-1"}})
	require.NoError(t, err)
	_, err = d.Dispatch(ctx, commands.Paste{})
	require.NoError(t, err)
	_, err = d.Dispatch(ctx, commands.Delete{IDs: []string{items.RootID}})
	require.Error(t, err)

	assert.Equal(t, 10.0, testutil.ToFloat64(c.items))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.pasteTotal.WithLabelValues("copy")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.commandsTotal.WithLabelValues("delete", commands.StatusRejected)))

	expected := `
# HELP vfstug_items Number of files and folders in the tree, root included
# TYPE vfstug_items gauge
vfstug_items 10
`
	assert.NoError(t, testutil.GatherAndCompare(c.Registry(), strings.NewReader(expected), "vfstug_items"))
}

func TestCollector_Handler(t *testing.T) {
	t.Parallel()
	c := New(true)
	c.CommandDone("select_all", "ok")

	srv := httptest.NewServer(c.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer func() {
		_ = resp.Body.Close()
	}()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `vfstug_commands_total{command="select_all",status="ok"} 1`)
	assert.Contains(t, string(body), "go_goroutines")
}
