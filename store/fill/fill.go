package fill

import (
	"context"

	"hydro/core"

	"github.com/fox-one/pkg/store/db"
	"github.com/jinzhu/gorm"
)

const defaultLimit = 500

type fillStore struct {
	db *db.DB
}

// New new fill store
func New(db *db.DB) core.IFillStore {
	return &fillStore{db: db}
}

func init() {
	db.RegisterMigrate(func(db *db.DB) error {
		tx := db.Update().Model(core.Fill{})
		if err := tx.AutoMigrate(core.Fill{}).Error; err != nil {
			return err
		}

		if err := tx.AddUniqueIndex("idx_fills_tx_hash", "tx_hash").Error; err != nil {
			return err
		}

		if err := tx.AddIndex("idx_fills_auction_id", "auction_id").Error; err != nil {
			return err
		}

		return nil
	})
}

// Create a fill is recorded once per tx hash
func (s *fillStore) Create(ctx context.Context, fill *core.Fill) error {
	return s.db.Update().Where("tx_hash=?", fill.TxHash).FirstOrCreate(fill).Error
}

func (s *fillStore) FindByTxHash(ctx context.Context, txHash string) (*core.Fill, bool, error) {
	var fill core.Fill
	if err := s.db.View().Where("tx_hash=?", txHash).First(&fill).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, false, nil
		}

		return nil, false, err
	}

	return &fill, true, nil
}

func (s *fillStore) ListByAuction(ctx context.Context, auctionID uint32) ([]*core.Fill, error) {
	var fills []*core.Fill
	if err := s.db.View().Where("auction_id=?", auctionID).Order("id ASC").Find(&fills).Error; err != nil {
		return nil, err
	}

	return fills, nil
}

func (s *fillStore) List(ctx context.Context, fromID int64, limit int) ([]*core.Fill, error) {
	if limit <= 0 {
		limit = defaultLimit
	}

	var fills []*core.Fill
	if err := s.db.View().Where("id>?", fromID).Order("id ASC").Limit(limit).Find(&fills).Error; err != nil {
		return nil, err
	}

	return fills, nil
}
