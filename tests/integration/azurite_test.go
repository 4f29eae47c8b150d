//go:build integration

package integration

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"apt-repo-function/internal/adapters"
	"apt-repo-function/internal/app"
	"apt-repo-function/internal/core"
	"apt-repo-function/internal/types"
	"apt-repo-function/tests/testutil"
)

const azuriteAccountKey = "Eby8vdM02xNOcqFlqUwJPLlmEtlCDXJ1OUzFT50uSRZ6IFsuFq2UVErCz4I6tq/K1SZFPTOtr/KBHBeksoGMGw=="

func startAzurite(ctx context.Context, t *testing.T) string {
	t.Helper()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "mcr.microsoft.com/azure-storage/azurite:latest",
			ExposedPorts: []string{"10000/tcp"},
			Cmd:          []string{"azurite-blob", "--blobHost", "0.0.0.0"},
			WaitingFor:   wait.ForListeningPort("10000/tcp"),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = container.Terminate(context.Background())
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "10000")
	require.NoError(t, err)

	return fmt.Sprintf(
		"DefaultEndpointsProtocol=http;AccountName=devstoreaccount1;AccountKey=%s;BlobEndpoint=http://%s:%s/devstoreaccount1;",
		azuriteAccountKey, host, port.Port(),
	)
}

func TestMaintenancePassAgainstAzurite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping azurite integration test in short mode")
	}

	ctx := t.Context()
	connectionString := startAzurite(ctx, t)

	store, err := adapters.NewAzureBlobAdapter(connectionString, "repo")
	require.NoError(t, err)
	require.NoError(t, store.EnsureContainer(ctx))

	// Simulate an external upload of a new package artifact.
	payload := testutil.BuildDeb(t, "Package: foo\nVersion: 1.0\n")
	require.NoError(t, store.Upload(ctx, "foo_1.0.deb", payload, nil))

	service := app.NewService(store)
	result, err := service.RunMaintenancePass(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Scan.Rebuilt)
	assert.Equal(t, 1, result.Assemble.Records)

	// Metadata record: correct stanza, tag matches the artifact.
	artifact, err := store.Properties(ctx, "foo_1.0.deb")
	require.NoError(t, err)
	record, err := store.Properties(ctx, "foo_1.0.package")
	require.NoError(t, err)
	assert.Equal(t, artifact.LastModified, record.Tags[types.TagLastModified])

	body, err := store.Download(ctx, "foo_1.0.package")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(body), "Package: foo\nVersion: 1.0"))
	assert.Contains(t, string(body), "Filename: foo_1.0.deb\n")

	// Index artifacts: stanza present, xz round-trips.
	index, err := store.Download(ctx, types.IndexName)
	require.NoError(t, err)
	assert.Contains(t, string(index), "Filename: foo_1.0.deb\n")

	compressed, err := store.Download(ctx, types.CompressedIndexName)
	require.NoError(t, err)
	decompressed, err := core.DecompressXZ(compressed)
	require.NoError(t, err)
	assert.Equal(t, index, decompressed)

	// Second pass: nothing stale, no metadata rewrite.
	result, err = service.RunMaintenancePass(ctx)
	require.NoError(t, err)
	assert.Zero(t, result.Scan.Rebuilt)
}
