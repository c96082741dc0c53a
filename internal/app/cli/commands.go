package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

const flagClusters = "clusters"

func (a *app) print(cmd *cobra.Command, v any) error {
	return writeJSON(cmd.OutOrStdout(), a.v.GetBool(flagPretty), v)
}

func (a *app) openCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "open FILE",
		Short: "Open a dataset file on the service host",
		Args:  cobra.ExactArgs(1),
		RunE: a.withClient(true, func(cmd *cobra.Command, args []string) error {
			code, err := a.client.OpenDatasetFromFile(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return a.print(cmd, map[string]int32{"response_code": code})
		}),
	}
}

func (a *app) dimensionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dimensions",
		Short: "List dataset dimensions",
		Args:  cobra.NoArgs,
		RunE: a.withClient(true, func(cmd *cobra.Command, _ []string) error {
			dims, err := a.client.GetDatasetDimensions(cmd.Context())
			if err != nil {
				return err
			}
			res := make([]dimensionInfo, len(dims))
			for i, d := range dims {
				res[i] = dimensionInfoFromProto(d)
			}
			return a.print(cmd, res)
		}),
	}
}

func (a *app) statisticsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "statistics NAME",
		Short: "Print descriptive statistics of a dimension",
		Args:  cobra.ExactArgs(1),
		RunE: a.withClient(true, func(cmd *cobra.Command, args []string) error {
			features, err := a.client.GetDimensionDescriptiveStatistics(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			res := make([]feature, len(features))
			for i, f := range features {
				res[i] = feature{Name: f.GetName(), Value: f.GetValue()}
			}
			return a.print(cmd, res)
		}),
	}
}

func (a *app) infoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info NAME",
		Short: "Print name and type of a dimension",
		Args:  cobra.ExactArgs(1),
		RunE: a.withClient(true, func(cmd *cobra.Command, args []string) error {
			info, err := a.client.GetDimensionInfo(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return a.print(cmd, dimensionInfoFromProto(info))
		}),
	}
}

func (a *app) outliersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "outliers NAME...",
		Short: "Flag outlier rows over the given dimensions",
		Args:  cobra.MinimumNArgs(1),
		RunE: a.withClient(true, func(cmd *cobra.Command, args []string) error {
			mapping, err := a.client.GetOutliersMapping(cmd.Context(), args...)
			if err != nil {
				return err
			}
			return a.print(cmd, mapping)
		}),
	}
}

func (a *app) centroidsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "centroids NAME...",
		Short: "Print k-means centroids over the given dimensions",
		Args:  cobra.MinimumNArgs(1),
		RunE: a.withClient(true, func(cmd *cobra.Command, args []string) error {
			k, err := clustersFlag(cmd)
			if err != nil {
				return err
			}
			centroids, err := a.client.GetKMeansCentroids(cmd.Context(), k, args...)
			if err != nil {
				return err
			}
			return a.print(cmd, rowsFromProto(centroids))
		}),
	}
	cmd.Flags().Int32(flagClusters, 3, "number of clusters")
	return cmd
}

func (a *app) mappingCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mapping NAME...",
		Short: "Print the k-means cluster of every row",
		Args:  cobra.MinimumNArgs(1),
		RunE: a.withClient(true, func(cmd *cobra.Command, args []string) error {
			k, err := clustersFlag(cmd)
			if err != nil {
				return err
			}
			mapping, err := a.client.GetKMeansClusterMapping(cmd.Context(), k, args...)
			if err != nil {
				return err
			}
			return a.print(cmd, mapping)
		}),
	}
	cmd.Flags().Int32(flagClusters, 3, "number of clusters")
	return cmd
}

func clustersFlag(cmd *cobra.Command) (int32, error) {
	k, err := cmd.Flags().GetInt32(flagClusters)
	if err != nil {
		return 0, err
	}
	if k <= 0 {
		return 0, fmt.Errorf("--%s must be positive, got %d", flagClusters, k)
	}
	return k, nil
}

func (a *app) dataCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "data NAME...",
		Short: "Print the values of the given dimensions",
		Args:  cobra.MinimumNArgs(1),
		RunE: a.withClient(true, func(cmd *cobra.Command, args []string) error {
			columns, err := a.client.GetDimensionsData(cmd.Context(), args...)
			if err != nil {
				return err
			}
			res := make([]dimensionData, len(columns))
			for i, c := range columns {
				data := c.GetData()
				if data == nil {
					data = []string{}
				}
				res[i] = dimensionData{Dimension: c.GetDimension(), Data: data}
			}
			return a.print(cmd, res)
		}),
	}
}

func (a *app) valuesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "values",
		Short: "Print every dataset row",
		Args:  cobra.NoArgs,
		RunE: a.withClient(true, func(cmd *cobra.Command, _ []string) error {
			rows, err := a.client.GetDatasetValues(cmd.Context())
			if err != nil {
				return err
			}
			return a.print(cmd, rowsFromProto(rows))
		}),
	}
}

func (a *app) correlationCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "correlation A B",
		Short: "Print the correlation between two dimensions",
		Args:  cobra.ExactArgs(2),
		RunE: a.withClient(true, func(cmd *cobra.Command, args []string) error {
			corr, err := a.client.GetCorrelationBetweenTwoDimensions(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			return a.print(cmd, map[string]float32{"correlation": corr})
		}),
	}
}

func (a *app) matrixCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "matrix",
		Short: "Print the correlation matrix of the dataset",
		Args:  cobra.NoArgs,
		RunE: a.withClient(true, func(cmd *cobra.Command, _ []string) error {
			rows, err := a.client.GetCorrelationMatrix(cmd.Context())
			if err != nil {
				return err
			}
			return a.print(cmd, rowsFromProto(rows))
		}),
	}
}

// connStater is implemented by clients that expose the connectivity state.
type connStater interface {
	ConnState() string
}

func (a *app) readyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ready",
		Short: "Check that the service connection is ready",
		Long:  "Without --wait the connection state is printed as is. With --wait it blocks until ready or --timeout.",
		Args:  cobra.NoArgs,
		RunE: a.withClient(false, func(cmd *cobra.Command, _ []string) error {
			if a.v.GetBool(flagWait) {
				if err := a.waitForReady(cmd.Context()); err != nil {
					return err
				}
			}
			res := map[string]any{
				"target": a.client.Target(),
				"ready":  a.client.IsReady(),
			}
			if sc, ok := a.client.(connStater); ok {
				res["state"] = sc.ConnState()
			}
			return a.print(cmd, res)
		}),
	}
}
