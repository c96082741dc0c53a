package cli

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/immvis/immvis-go/internal/pkg/client/immvis"
	"github.com/immvis/immvis-go/internal/pkg/client/immvis/immvistest"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func bufnetFactory(t *testing.T, svc *immvistest.Service) (ClientFactory, *string) {
	t.Helper()
	opts := immvistest.Start(t, svc)
	var gotTarget string
	return func(target string, params immvis.ClientParams) immvis.Client {
		gotTarget = target
		params.DialOptions = append(params.DialOptions, opts...)
		return immvis.NewFromTarget(immvistest.Target, params)
	}, &gotTarget
}

func runCmd(t *testing.T, factory ClientFactory, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(factory)
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err := root.ExecuteContext(ctx)
	return out.String(), err
}

func TestCommands(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    string
		wantErr codes.Code
	}{
		{
			name: "open",
			args: []string{"open", "/data/iris.csv"},
			want: `{"response_code":0}`,
		},
		{
			name: "dimensions",
			args: []string{"dimensions"},
			want: `[{"name":"sepal_length","type":"float64"},{"name":"sepal_width","type":"float64"},{"name":"species","type":"object"}]`,
		},
		{
			name: "statistics",
			args: []string{"statistics", "sepal_length"},
			want: `[{"name":"count","value":"4"},{"name":"mean","value":"5.25"},{"name":"std","value":"0.4"}]`,
		},
		{
			name: "info",
			args: []string{"info", "species"},
			want: `{"name":"species","type":"object"}`,
		},
		{
			name:    "info_unknown",
			args:    []string{"info", "petal_length"},
			wantErr: codes.NotFound,
		},
		{
			name: "outliers",
			args: []string{"outliers", "sepal_length", "sepal_width"},
			want: `[false,false,true,false]`,
		},
		{
			name: "centroids",
			args: []string{"centroids", "--clusters", "2", "sepal_length", "sepal_width"},
			want: `[["5.07","3.3"],["5.8","2.7"]]`,
		},
		{
			name: "mapping",
			args: []string{"mapping", "--clusters=2", "sepal_length"},
			want: `[0,0,1,0]`,
		},
		{
			name: "data",
			args: []string{"data", "species"},
			want: `[{"dimension":"species","data":["setosa","setosa","virginica","setosa"]}]`,
		},
		{
			name: "values",
			args: []string{"values"},
			want: `[["5.1","3.5","setosa"],["4.9","3.0","setosa"],["5.8","2.7","virginica"],["5.2","3.4","setosa"]]`,
		},
		{
			name: "correlation",
			args: []string{"correlation", "sepal_length", "sepal_width"},
			want: `{"correlation":-0.42}`,
		},
		{
			name: "matrix",
			args: []string{"matrix"},
			want: `[["1.0","-0.42"],["-0.42","1.0"]]`,
		},
		{
			name: "ready_wait",
			args: []string{"ready", "--wait"},
			want: `{"ready":true,"state":"READY","target":"passthrough:///bufnet"}`,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			factory, _ := bufnetFactory(t, immvistest.NewService(immvistest.SampleDataset()))
			out, err := runCmd(t, factory, tt.args...)
			if tt.wantErr != codes.OK {
				require.Error(t, err)
				require.Equal(t, tt.wantErr, status.Code(err))
				return
			}
			require.NoError(t, err)
			require.JSONEq(t, tt.want, out)
		})
	}
}

func TestCommandsArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "open_no_file", args: []string{"open"}},
		{name: "info_two_names", args: []string{"info", "a", "b"}},
		{name: "outliers_no_names", args: []string{"outliers"}},
		{name: "correlation_one_name", args: []string{"correlation", "a"}},
		{name: "values_extra_arg", args: []string{"values", "a"}},
		{name: "centroids_zero_clusters", args: []string{"centroids", "--clusters", "0", "a"}},
		{name: "mapping_negative_clusters", args: []string{"mapping", "--clusters", "-1", "a"}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := immvistest.NewService(immvistest.SampleDataset())
			factory, _ := bufnetFactory(t, svc)
			_, err := runCmd(t, factory, tt.args...)
			require.Error(t, err)
			require.Empty(t, svc.ReceivedDimensions())
		})
	}
}

func TestOpenRecordsFile(t *testing.T) {
	t.Parallel()

	svc := immvistest.NewService(immvistest.SampleDataset())
	factory, _ := bufnetFactory(t, svc)
	_, err := runCmd(t, factory, "open", "/data/iris.csv")
	require.NoError(t, err)
	require.Equal(t, []string{"/data/iris.csv"}, svc.OpenedFiles())
}

func TestRetries(t *testing.T) {
	t.Parallel()

	svc := immvistest.NewService(immvistest.SampleDataset())
	svc.FailNext(2)
	factory, _ := bufnetFactory(t, svc)

	out, err := runCmd(t, factory, "--retries", "2", "--retry-backoff", "1ms", "info", "species")
	require.NoError(t, err)
	require.JSONEq(t, `{"name":"species","type":"object"}`, out)
}

func TestTargetFlag(t *testing.T) {
	t.Parallel()

	factory, target := bufnetFactory(t, immvistest.NewService(immvistest.SampleDataset()))
	_, err := runCmd(t, factory, "--target", "immvis:6000", "dimensions")
	require.NoError(t, err)
	require.Equal(t, "immvis:6000", *target)
}

func TestTargetEnv(t *testing.T) {
	t.Setenv("IMMVIS_TARGET", "from-env:50051")

	factory, target := bufnetFactory(t, immvistest.NewService(immvistest.SampleDataset()))
	_, err := runCmd(t, factory, "dimensions")
	require.NoError(t, err)
	require.Equal(t, "from-env:50051", *target)
}

func TestPrettyOutput(t *testing.T) {
	t.Parallel()

	factory, _ := bufnetFactory(t, immvistest.NewService(immvistest.SampleDataset()))
	out, err := runCmd(t, factory, "--pretty", "info", "species")
	require.NoError(t, err)
	require.Equal(t, "{\n  \"name\": \"species\",\n  \"type\": \"object\"\n}\n", out)
}
