package database

import (
	"context"
	"log"

	appconfig "github.com/tukang-design/tukang-api/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// ConnectDynamoDB creates a DynamoDB client from the application config.
//
// Local-friendly: when cfg.DynamoDBEndpoint is set (e.g. http://dynamodb:8000)
// the client is pointed at local DynamoDB, which does not validate
// credentials but still requires the SDK to carry some.
func ConnectDynamoDB(cfg *appconfig.AWSConfig) *dynamodb.Client {
	awsCfg, err := NewDynamoDBConfig(context.Background(), cfg)
	if err != nil {
		log.Fatalf("failed to create dynamodb config: %v", err)
	}
	return dynamodb.NewFromConfig(awsCfg)
}

func NewDynamoDBConfig(ctx context.Context, appCfg *appconfig.AWSConfig) (aws.Config, error) {
	creds := credentials.NewStaticCredentialsProvider(
		appCfg.AccessKeyID,
		appCfg.SecretAccessKey,
		"",
	)

	loadOpts := []func(*config.LoadOptions) error{
		config.WithRegion(appCfg.Region),
		config.WithCredentialsProvider(creds),
	}

	if appCfg.DynamoDBEndpoint != "" {
		endpoint := appCfg.DynamoDBEndpoint
		resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, _ ...interface{}) (aws.Endpoint, error) {
			if service == dynamodb.ServiceID {
				return aws.Endpoint{URL: endpoint, SigningRegion: region, HostnameImmutable: true}, nil
			}
			return aws.Endpoint{}, &aws.EndpointNotFoundError{}
		})
		loadOpts = append(loadOpts, config.WithEndpointResolverWithOptions(resolver))
	}

	return config.LoadDefaultConfig(ctx, loadOpts...)
}
