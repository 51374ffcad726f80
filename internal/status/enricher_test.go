package status

import (
	"context"
	"errors"
	"testing"

	"github.com/auto-notify/docker-discord-notify/internal/domain"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/image"
	"github.com/docker/docker/client"
	"github.com/docker/docker/errdefs"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

type fakeDockerClient struct {
	inspect      container.InspectResponse
	inspectErr   error
	imageInspect image.InspectResponse
	imageErr     error
}

func (f *fakeDockerClient) ContainerInspect(ctx context.Context, containerID string) (container.InspectResponse, error) {
	return f.inspect, f.inspectErr
}

func (f *fakeDockerClient) ImageInspect(ctx context.Context, imageID string, opts ...client.ImageInspectOption) (image.InspectResponse, error) {
	return f.imageInspect, f.imageErr
}

func runningContainer() container.InspectResponse {
	return container.InspectResponse{
		ContainerJSONBase: &container.ContainerJSONBase{
			ID:      "abc",
			Image:   "sha256:deadbeef",
			Created: "2024-01-01T12:00:00.000Z",
			State: &container.State{
				Status: "running",
			},
			Platform: "linux",
		},
	}
}

func TestLookupSuccess(t *testing.T) {
	cli := &fakeDockerClient{
		inspect:      runningContainer(),
		imageInspect: image.InspectResponse{RepoTags: []string{"web:latest", "web:1.2"}},
	}
	e := NewEnricher(cli, zerolog.Nop())

	st := e.Lookup(context.Background(), "abc")

	assert.Equal(t, domain.ContainerStatus{
		Image:    "web:latest",
		Status:   "running",
		Health:   "N/A",
		Created:  "2024-01-01 12:00:00",
		Platform: "linux",
	}, st)
}

func TestLookupUntaggedImage(t *testing.T) {
	cli := &fakeDockerClient{
		inspect:      runningContainer(),
		imageInspect: image.InspectResponse{},
	}
	e := NewEnricher(cli, zerolog.Nop())

	st := e.Lookup(context.Background(), "abc")
	assert.Equal(t, "untagged", st.Image)
}

func TestLookupReportsHealth(t *testing.T) {
	ctr := runningContainer()
	ctr.State.Health = &container.Health{Status: "healthy"}
	cli := &fakeDockerClient{
		inspect:      ctr,
		imageInspect: image.InspectResponse{RepoTags: []string{"web:latest"}},
	}
	e := NewEnricher(cli, zerolog.Nop())

	st := e.Lookup(context.Background(), "abc")
	assert.Equal(t, "healthy", st.Health)
}

func TestLookupMissingPlatform(t *testing.T) {
	ctr := runningContainer()
	ctr.Platform = ""
	cli := &fakeDockerClient{
		inspect:      ctr,
		imageInspect: image.InspectResponse{RepoTags: []string{"web:latest"}},
	}
	e := NewEnricher(cli, zerolog.Nop())

	st := e.Lookup(context.Background(), "abc")
	assert.Equal(t, "N/A", st.Platform)
}

func TestLookupContainerNotFound(t *testing.T) {
	cli := &fakeDockerClient{
		inspectErr: errdefs.NotFound(errors.New("no such container: abc")),
	}
	e := NewEnricher(cli, zerolog.Nop())

	st := e.Lookup(context.Background(), "abc")
	assert.Equal(t, domain.UnknownStatus(), st)
}

func TestLookupTransportFailure(t *testing.T) {
	cli := &fakeDockerClient{
		inspectErr: errors.New("dial unix /var/run/docker.sock: connection refused"),
	}
	e := NewEnricher(cli, zerolog.Nop())

	st := e.Lookup(context.Background(), "abc")
	assert.Equal(t, domain.ErrorStatus(), st)
}

func TestLookupImageInspectFailure(t *testing.T) {
	cli := &fakeDockerClient{
		inspect:  runningContainer(),
		imageErr: errors.New("server error"),
	}
	e := NewEnricher(cli, zerolog.Nop())

	st := e.Lookup(context.Background(), "abc")
	assert.Equal(t, domain.ErrorStatus(), st)
}

func TestFormatCreatedTruncation(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2024-01-01T12:00:00.000000000Z", "2024-01-01 12:00:00"},
		{"2024-01-01T12:00:00Z", "2024-01-01 12:00:00"},
		{"unknown", "unknown"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, formatCreated(tt.in))
	}
}
