package mongodb

import (
	"time"

	portsrepo "github.com/SscSPs/garage_invoice_app/internal/core/ports/repositories"
	"go.mongodb.org/mongo-driver/mongo"
)

// NewRepositoryProvider wires every Mongo-backed repository against db.
// opTimeout bounds each individual database call; zero disables it.
func NewRepositoryProvider(db *mongo.Database, opTimeout time.Duration) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:        newMongoUserRepository(db, opTimeout),
		CustomerRepo:    newMongoCustomerRepository(db, opTimeout),
		InvoiceRepo:     newMongoInvoiceRepository(db, opTimeout),
		ProductRepo:     newMongoProductRepository(db, opTimeout),
		PDFSettingsRepo: newMongoPDFSettingsRepository(db, opTimeout),
	}
}
