package adapters

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/bloberror"
	"github.com/ZanzyTHEbar/errbuilder-go"

	"apt-repo-function/internal/ports"
	"apt-repo-function/internal/types"
)

// AzureBlobAdapter implements the store port against one Azure Blob Storage
// container. A fresh adapter (and SDK client) is constructed per invocation;
// nothing here is shared between triggers.
type AzureBlobAdapter struct {
	client    *azblob.Client
	container string
}

func NewAzureBlobAdapter(connectionString string, containerName string) (*AzureBlobAdapter, error) {
	client, err := azblob.NewClientFromConnectionString(connectionString, nil)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeUnavailable).
			WithMsg("failed to create blob storage client").
			WithCause(err)
	}
	return &AzureBlobAdapter{client: client, container: containerName}, nil
}

func (a *AzureBlobAdapter) List(ctx context.Context) ([]types.ObjectInfo, error) {
	var infos []types.ObjectInfo
	pager := a.client.NewListBlobsFlatPager(a.container, &azblob.ListBlobsFlatOptions{
		Include: azblob.ListBlobsInclude{Metadata: true},
	})
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, storeError("failed to list container", err)
		}
		for _, item := range page.Segment.BlobItems {
			if item.Name == nil {
				continue
			}
			info := types.ObjectInfo{
				Name: *item.Name,
				Tags: normalizeMetadata(item.Metadata),
			}
			if item.Properties != nil && item.Properties.LastModified != nil {
				info.LastModified = formatLastModified(*item.Properties.LastModified)
			}
			infos = append(infos, info)
		}
	}
	return infos, nil
}

func (a *AzureBlobAdapter) Exists(ctx context.Context, name string) (bool, error) {
	blobClient := a.client.ServiceClient().NewContainerClient(a.container).NewBlobClient(name)
	_, err := blobClient.GetProperties(ctx, nil)
	if err != nil {
		if bloberror.HasCode(err, bloberror.BlobNotFound) {
			return false, nil
		}
		return false, storeError("failed to probe blob "+name, err)
	}
	return true, nil
}

func (a *AzureBlobAdapter) Properties(ctx context.Context, name string) (types.ObjectInfo, error) {
	blobClient := a.client.ServiceClient().NewContainerClient(a.container).NewBlobClient(name)
	resp, err := blobClient.GetProperties(ctx, nil)
	if err != nil {
		if bloberror.HasCode(err, bloberror.BlobNotFound) {
			return types.ObjectInfo{}, notFoundError(name)
		}
		return types.ObjectInfo{}, storeError("failed to read blob properties for "+name, err)
	}
	info := types.ObjectInfo{
		Name: name,
		Tags: normalizeMetadata(resp.Metadata),
	}
	if resp.LastModified != nil {
		info.LastModified = formatLastModified(*resp.LastModified)
	}
	return info, nil
}

func (a *AzureBlobAdapter) Download(ctx context.Context, name string) ([]byte, error) {
	resp, err := a.client.DownloadStream(ctx, a.container, name, nil)
	if err != nil {
		if bloberror.HasCode(err, bloberror.BlobNotFound) {
			return nil, notFoundError(name)
		}
		return nil, storeError("failed to download blob "+name, err)
	}
	defer resp.Body.Close()
	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, storeError("failed to read blob "+name, err)
	}
	return payload, nil
}

func (a *AzureBlobAdapter) Upload(ctx context.Context, name string, data []byte, tags map[string]string) error {
	var metadata map[string]*string
	if len(tags) > 0 {
		metadata = map[string]*string{}
		for key, value := range tags {
			value := value
			metadata[key] = &value
		}
	}
	_, err := a.client.UploadBuffer(ctx, a.container, name, data, &azblob.UploadBufferOptions{
		Metadata: metadata,
	})
	if err != nil {
		return storeError("failed to upload blob "+name, err)
	}
	return nil
}

// EnsureContainer creates the container if it does not exist yet. Used by
// local development and the integration tests; production deployments
// provision the container out of band.
func (a *AzureBlobAdapter) EnsureContainer(ctx context.Context) error {
	_, err := a.client.CreateContainer(ctx, a.container, nil)
	if err != nil && !bloberror.HasCode(err, bloberror.ContainerAlreadyExists) {
		return storeError("failed to create container "+a.container, err)
	}
	return nil
}

// formatLastModified renders the store's last-modified timestamp the same way
// on every read path. The resulting string is what gets stored in the
// DebLastModified tag and compared verbatim on later passes.
func formatLastModified(t time.Time) string {
	return t.UTC().Format(http.TimeFormat)
}

// normalizeMetadata flattens SDK metadata to plain strings. Azure is not
// case-preserving on metadata keys, so the well-known tag key is folded back
// to its canonical spelling.
func normalizeMetadata(metadata map[string]*string) map[string]string {
	tags := map[string]string{}
	for key, value := range metadata {
		if value == nil {
			continue
		}
		if strings.EqualFold(key, types.TagLastModified) {
			key = types.TagLastModified
		}
		tags[key] = *value
	}
	return tags
}

func storeError(msg string, cause error) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeUnavailable).
		WithMsg(msg).
		WithCause(cause)
}

var _ ports.BlobStorePort = (*AzureBlobAdapter)(nil)
