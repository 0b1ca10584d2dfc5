package jobs

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// InventoryExtender định nghĩa interface cho việc kéo dài sổ tồn kho
type InventoryExtender interface {
	ExtendInventoryHorizon() error
}

var inventoryExtender InventoryExtender

// SetInventoryExtender thiết lập implementation cho InventoryExtender
func SetInventoryExtender(extender InventoryExtender) {
	inventoryExtender = extender
}

// InitCronJobs khởi tạo các cron jobs
func InitCronJobs(c *cron.Cron) error {
	// Cron job chạy lúc 0h mỗi ngày: mở bán thêm một ngày tồn kho ở cuối kỳ
	_, err := c.AddFunc("0 0 * * *", func() {
		now := time.Now()
		log.Printf("Đang chạy kéo dài sổ tồn kho lúc: %v", now)
		if inventoryExtender == nil {
			log.Printf("Lỗi: InventoryExtender chưa được thiết lập")
			return
		}
		if err := inventoryExtender.ExtendInventoryHorizon(); err != nil {
			log.Printf("Lỗi khi kéo dài sổ tồn kho: %v", err)
		}
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}
