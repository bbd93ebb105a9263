package domain

import "context"

// ServicePort defines the service contract for text cleaning
type ServicePort interface {
	Trim(ctx context.Context, in TrimInput) (TextOutput, error)
	Clean(ctx context.Context, in CleanInput) (CleanOutput, error)
	Typography(ctx context.Context, in TypographyInput) (TextOutput, error)
	Profiles(ctx context.Context) ([]Profile, error)
}
