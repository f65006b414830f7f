package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"
)

// IIdentityService defines the interface for identity-provider account
// provisioning.
type IIdentityService interface {
	CreateUser(username, email, name string) error
}

// CognitoService implements IIdentityService against an AWS Cognito user
// pool. The customer CPF is the pool username.
type CognitoService struct {
	client     *cognitoidentityprovider.Client
	userPoolID string
}

// NewCognitoService creates a Cognito-backed identity service.
func NewCognitoService(region, userPoolID string) (IIdentityService, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return &CognitoService{
		client:     cognitoidentityprovider.NewFromConfig(awsCfg),
		userPoolID: userPoolID,
	}, nil
}

const initialPassword = "TempPassword123!"

// CreateUser provisions a pool account for the customer. An account that
// already exists is a no-op success; any other failure surfaces to the
// caller.
func (s *CognitoService) CreateUser(username, email, name string) error {
	ctx := context.Background()

	_, err := s.client.AdminCreateUser(ctx, &cognitoidentityprovider.AdminCreateUserInput{
		UserPoolId: aws.String(s.userPoolID),
		Username:   aws.String(username),
		UserAttributes: []types.AttributeType{
			{Name: aws.String("email"), Value: aws.String(email)},
			{Name: aws.String("name"), Value: aws.String(name)},
			{Name: aws.String("custom:cpf"), Value: aws.String(username)},
		},
		TemporaryPassword: aws.String(initialPassword),
		MessageAction:     types.MessageActionTypeSuppress,
	})
	if err != nil {
		var exists *types.UsernameExistsException
		if errors.As(err, &exists) {
			log.Printf("Identity account already exists: username=%s", username)
			return nil
		}
		return fmt.Errorf("failed to create identity account: %w", err)
	}

	_, err = s.client.AdminSetUserPassword(ctx, &cognitoidentityprovider.AdminSetUserPasswordInput{
		UserPoolId: aws.String(s.userPoolID),
		Username:   aws.String(username),
		Password:   aws.String(initialPassword),
		Permanent:  true,
	})
	if err != nil {
		return fmt.Errorf("failed to set identity account password: %w", err)
	}

	return nil
}
