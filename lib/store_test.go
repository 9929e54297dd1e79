package lib

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var testTime = time.Date(2019, 5, 1, 12, 0, 0, 0, time.UTC)

func TestNewScanRecord(t *testing.T) {
	src := &Source{Name: "add", Text: "(+ 1 1) !"}
	rec := newScanRecord(src, testTime)
	require.Equal(t, "add", rec.Name)
	require.Equal(t, "(+ 1 1) !", rec.Source)
	require.Equal(t, 8, rec.Consumed)
	require.False(t, rec.Complete)
	require.Len(t, rec.Tokens, 5)
	require.Equal(t, testTime, rec.ScannedAt)
}

func TestRecordScansBadConnection(t *testing.T) {
	// nothing listens on port 1, so creating the table fails
	err := RecordScans(context.Background(), "host=127.0.0.1 port=1 sslmode=disable connect_timeout=1", nil)
	require.Error(t, err)
}
