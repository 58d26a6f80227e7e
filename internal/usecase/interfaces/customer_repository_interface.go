package interfaces

import (
	"context"
	"retail_console/internal/domain/entities"
)

// ICustomerRepository abstracts DynamoDB persistence for Customer.
//
// MergeProfilingPreferences replaces only the "profiling" key of the nested
// preferences document, leaving sibling preference families intact.

type ICustomerRepository interface {
	GetByID(ctx context.Context, id string) (entities.Customer, error)
	MergeProfilingPreferences(ctx context.Context, id string, prefs entities.ProfilingPreferences) (entities.Customer, error)
}
