package docker

import (
	"github.com/pulumi/pulumi-gcp/sdk/v9/go/gcp"
	"github.com/pulumi/pulumi-gcp/sdk/v9/go/gcp/artifactregistry"
	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"
	"github.com/pulumi/pulumi/sdk/v3/go/pulumi/config"
)

// CreateCloudrunRepo creates the registry the dashboard image is pushed to.
func CreateCloudrunRepo(ctx *pulumi.Context, prov *gcp.Provider) (*artifactregistry.Repository, error) {
	gcpCfg := config.New(ctx, "gcp")
	region := gcpCfg.Require("region")

	return artifactregistry.NewRepository(ctx, "dashboardRepository", &artifactregistry.RepositoryArgs{
		Format:       pulumi.String("DOCKER"),
		RepositoryId: pulumi.String("dashboard"),
		Location:     pulumi.String(region),
		Description:  pulumi.String("Docker images of the village dashboard API"),
	},
		pulumi.Provider(prov),
	)
}
