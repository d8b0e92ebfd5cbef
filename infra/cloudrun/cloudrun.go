package cloudrun

import (
	"fmt"
	"strconv"

	"github.com/pulumi/pulumi-docker/sdk/v4/go/docker"
	"github.com/pulumi/pulumi-gcp/sdk/v9/go/gcp"
	"github.com/pulumi/pulumi-gcp/sdk/v9/go/gcp/cloudrun"
	"github.com/pulumi/pulumi-gcp/sdk/v9/go/gcp/projects"
	"github.com/pulumi/pulumi-gcp/sdk/v9/go/gcp/serviceaccount"
	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"
	"github.com/pulumi/pulumi/sdk/v3/go/pulumi/config"

	"github.com/GregMSThompson/village-dashboard/infra/common"
)

const containerPort = 8080

// SetupCloudRun builds the dashboard image and deploys it as a public Cloud
// Run service. It returns the service URL.
func SetupCloudRun(ctx *pulumi.Context, prov *gcp.Provider, res ...pulumi.Resource) (pulumi.StringOutput, error) {
	img, err := buildApiImage(ctx, res...)
	if err != nil {
		return pulumi.StringOutput{}, err
	}

	srv, err := enableCloudRun(ctx, prov)
	if err != nil {
		return pulumi.StringOutput{}, err
	}

	sa, err := createServiceAccount(ctx, prov)
	if err != nil {
		return pulumi.StringOutput{}, err
	}

	svc, err := createCloudRunService(ctx, img, sa, prov, srv)
	if err != nil {
		return pulumi.StringOutput{}, err
	}

	if err := allowPublicAccess(ctx, svc, prov); err != nil {
		return pulumi.StringOutput{}, err
	}

	return svc.Statuses.Index(pulumi.Int(0)).Url().Elem(), nil
}

func buildApiImage(ctx *pulumi.Context, res ...pulumi.Resource) (*docker.Image, error) {
	gcpCfg := config.New(ctx, "gcp")
	projectID := gcpCfg.Require("project")
	region := gcpCfg.Require("region")

	hash, err := common.GenerateHash("../")
	if err != nil {
		return nil, err
	}

	return docker.NewImage(ctx, "dashboardImage", &docker.ImageArgs{
		Build: docker.DockerBuildArgs{
			Platform:   pulumi.String("linux/amd64"),
			Context:    pulumi.String(".."),
			Dockerfile: pulumi.String("../cmd/api/Dockerfile"),
		},
		ImageName: pulumi.String(fmt.Sprintf("%s-docker.pkg.dev/%s/dashboard/village-dashboard:%s", region, projectID, hash)),
	},
		pulumi.DependsOn(res),
	)
}

func enableCloudRun(ctx *pulumi.Context, prov *gcp.Provider) (*projects.Service, error) {
	return projects.NewService(ctx, "cloudRunService", &projects.ServiceArgs{
		Service: pulumi.String("run.googleapis.com"),
	},
		pulumi.Provider(prov),
	)
}

// createServiceAccount gives the service its own identity with no project
// roles; the dashboard reads nothing outside its container.
func createServiceAccount(ctx *pulumi.Context, prov *gcp.Provider) (*serviceaccount.Account, error) {
	return serviceaccount.NewAccount(ctx, "dashboardServiceAccount", &serviceaccount.AccountArgs{
		AccountId:   pulumi.String("village-dashboard"),
		DisplayName: pulumi.String("Village Dashboard Service Account"),
	},
		pulumi.Provider(prov),
	)
}

func createCloudRunService(ctx *pulumi.Context,
	img *docker.Image,
	sa *serviceaccount.Account,
	prov *gcp.Provider,
	res ...pulumi.Resource) (*cloudrun.Service, error) {
	gcpCfg := config.New(ctx, "gcp")
	crCfg := config.New(ctx, "cloudrun")
	appCfg := config.New(ctx, "dashboard")

	region := gcpCfg.Require("region")
	minScale := crCfg.Require("minScale")
	maxScale := crCfg.Require("maxScale")
	cpu := crCfg.Require("cpu")
	memory := crCfg.Require("memory")
	logLevel := crCfg.Require("logLevel")
	timeout, _ := strconv.Atoi(crCfg.Require("timeout"))

	chartEngine := appCfg.Get("chartEngine")
	if chartEngine == "" {
		chartEngine = "apexcharts"
	}
	sessionTTL := appCfg.Get("sessionTTL")
	if sessionTTL == "" {
		sessionTTL = "30m"
	}
	corsOrigins := appCfg.Require("corsOrigins")

	env := func(name, value string) *cloudrun.ServiceTemplateSpecContainerEnvArgs {
		return &cloudrun.ServiceTemplateSpecContainerEnvArgs{
			Name:  pulumi.String(name),
			Value: pulumi.String(value),
		}
	}

	return cloudrun.NewService(ctx, "dashboardService", &cloudrun.ServiceArgs{
		Location: pulumi.String(region),

		Template: &cloudrun.ServiceTemplateArgs{
			Metadata: &cloudrun.ServiceTemplateMetadataArgs{
				Annotations: pulumi.StringMap{
					"autoscaling.knative.dev/minScale": pulumi.String(minScale),
					"autoscaling.knative.dev/maxScale": pulumi.String(maxScale),

					"run.googleapis.com/cpu":             pulumi.String(cpu),
					"run.googleapis.com/memory":          pulumi.String(memory),
					"run.googleapis.com/cpu-throttling":  pulumi.String("true"),

					// Sessions live in process memory; keep a client on one instance.
					"run.googleapis.com/sessionAffinity": pulumi.String("true"),
				},
			},

			Spec: &cloudrun.ServiceTemplateSpecArgs{
				ServiceAccountName: sa.Email,
				TimeoutSeconds:     pulumi.Int(timeout),

				Containers: cloudrun.ServiceTemplateSpecContainerArray{
					&cloudrun.ServiceTemplateSpecContainerArgs{
						Image: img.ImageName,
						Ports: cloudrun.ServiceTemplateSpecContainerPortArray{
							&cloudrun.ServiceTemplateSpecContainerPortArgs{
								ContainerPort: pulumi.Int(containerPort),
							},
						},
						Envs: cloudrun.ServiceTemplateSpecContainerEnvArray{
							env("LOGLEVEL", logLevel),
							env("CHARTENGINE", chartEngine),
							env("SESSIONTTL", sessionTTL),
							env("CORSORIGINS", corsOrigins),
						},
					},
				},
			},
		},
	},
		pulumi.Provider(prov),
		pulumi.DependsOn(res),
	)
}

func allowPublicAccess(ctx *pulumi.Context, svc *cloudrun.Service, prov *gcp.Provider) error {
	gcpCfg := config.New(ctx, "gcp")
	region := gcpCfg.Require("region")

	_, err := cloudrun.NewIamMember(ctx, "publicInvoker", &cloudrun.IamMemberArgs{
		Service:  svc.Name,
		Location: pulumi.String(region),
		Role:     pulumi.String("roles/run.invoker"),
		Member:   pulumi.String("allUsers"),
	},
		pulumi.Provider(prov),
	)
	return err
}
