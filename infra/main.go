package main

import (
	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"

	"github.com/GregMSThompson/village-dashboard/infra/cloudrun"
	"github.com/GregMSThompson/village-dashboard/infra/docker"
	"github.com/GregMSThompson/village-dashboard/infra/provider"
)

func main() {
	pulumi.Run(func(ctx *pulumi.Context) error {
		prov, err := provider.SetupDefaultProvider(ctx)
		if err != nil {
			return err
		}

		repo, err := docker.CreateCloudrunRepo(ctx, prov)
		if err != nil {
			return err
		}

		url, err := cloudrun.SetupCloudRun(ctx, prov, repo)
		if err != nil {
			return err
		}

		ctx.Export("dashboardUrl", url)
		return nil
	})
}
