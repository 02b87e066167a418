package db

import (
	"errors"
	"log"

	"rewardsadmin/config"
)

// Resource names double as the record file names under the data directory.
const (
	BrandsResource   = "brands"
	VouchersResource = "vouchers"
	CouponsResource  = "coupons"
)

// Database groups the record stores of every locally persisted resource.
// Handlers receive it instead of building file paths themselves.
type Database struct {
	Brands   *Store
	Vouchers *Store
	Coupons  *Store
}

// NewDatabase creates one store per resource under cfg.DataDir and probes each file once.
// Unreadable files are only logged here; each list endpoint decides how to report them.
func NewDatabase(cfg *config.Config) (*Database, error) {
	database := &Database{
		Brands:   NewStore(cfg.DataDir, BrandsResource, cfg.EnableBackup),
		Vouchers: NewStore(cfg.DataDir, VouchersResource, cfg.EnableBackup),
		Coupons:  NewStore(cfg.DataDir, CouponsResource, cfg.EnableBackup),
	}

	log.Printf("INFO: Initializing record stores in: %s", cfg.DataDir)
	for _, store := range database.Stores() {
		count, err := store.Len()
		switch {
		case err == nil:
			log.Printf("INFO: Store '%s' ready (%s): %d records", store.Name(), store.Path(), count)
		case errors.Is(err, ErrParse):
			log.Printf("CRITICAL: Store '%s' file is corrupt: %v. Requests against it will fail until it is repaired.", store.Name(), err)
		default:
			return nil, err
		}
	}

	return database, nil
}

// Stores returns every store in a fixed order.
func (db *Database) Stores() []*Store {
	return []*Store{db.Brands, db.Vouchers, db.Coupons}
}
