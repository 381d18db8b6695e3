// internal/nvstore/nvstore.go
package nvstore

import "github.com/tamzrod/greenhouse-settings/internal/record"

// Erased is the value a never-written cell reads as.
// Every Backing must return it for bytes it has no data for.
const Erased = record.ErasedByte

// Backing is a byte-addressable non-volatile region.
//
// Begin binds the region to size bytes and returns its current image.
// Commit durably persists image; readers never observe a partial write.
type Backing interface {
	Begin(size int) ([]byte, error)
	Commit(image []byte) error
}

// erasedImage returns size erased bytes with data copied over the front.
func erasedImage(size int, data []byte) []byte {
	img := make([]byte, size)
	n := copy(img, data)
	for i := n; i < size; i++ {
		img[i] = Erased
	}
	return img
}
