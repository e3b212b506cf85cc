package utils

import (
	"math/rand"
	"time"

	"github.com/nahomt24/addis_estates/models"
	"gorm.io/gorm"
)

const referenceCodeLength = 8
const referencePrefix = "AE-"
const letterBytes = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateUniqueReferenceCode produces a listing reference like AE-7K2MQ9XD,
// retrying until the code is unused.
func GenerateUniqueReferenceCode(tx *gorm.DB) (string, error) {
	seededRand := rand.New(rand.NewSource(time.Now().UnixNano()))

	for {
		b := make([]byte, referenceCodeLength)
		for i := range b {
			b[i] = letterBytes[seededRand.Intn(len(letterBytes))]
		}
		code := referencePrefix + string(b)

		var property models.Property
		err := tx.Where("reference_code = ?", code).First(&property).Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return code, nil
			}
			return "", err
		}
	}
}
