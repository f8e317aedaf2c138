package excel

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"github.com/inkpresshq/inkpress-cms-backend/internal/database/repository"
)

// Service builds Excel exports of an organization's content
type Service struct {
	postRepo *repository.PostRepository
}

// NewService creates a new Excel export service
func NewService(db *gorm.DB) *Service {
	return &Service{
		postRepo: repository.NewPostRepository(db),
	}
}

// Practical ceiling for a one-shot export; larger tenants should page
const exportLimit = 10000

// ExportPosts writes all posts of an organization into a spreadsheet and
// returns the serialized file.
func (s *Service) ExportPosts(organizationID string) (*bytes.Buffer, string, error) {
	posts, _, err := s.postRepo.List(organizationID, repository.PostFilter{}, exportLimit, 0)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load posts: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Posts"
	f.SetSheetName("Sheet1", sheet)

	// Style published rows so editors can scan the export
	publishedStyle, _ := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"C6EFCE"}, // Light green
			Pattern: 1,
		},
	})

	headers := []string{"ID", "Title", "Slug", "Type", "Published", "Published At", "Category", "Created At"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, header)
	}

	for i, post := range posts {
		row := i + 2
		publishedAt := ""
		if post.PublishedAt != nil {
			publishedAt = post.PublishedAt.Format("2006-01-02 15:04:05")
		}
		category := ""
		if post.Category != nil {
			category = post.Category.Name
		}

		values := []interface{}{
			post.ID,
			post.Title,
			post.Slug,
			post.Type,
			post.Published,
			publishedAt,
			category,
			post.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		for j, value := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, row)
			f.SetCellValue(sheet, cell, value)
		}

		if post.Published {
			start, _ := excelize.CoordinatesToCellName(1, row)
			end, _ := excelize.CoordinatesToCellName(len(values), row)
			f.SetCellStyle(sheet, start, end, publishedStyle)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("failed to write spreadsheet: %w", err)
	}

	filename := fmt.Sprintf("posts_%s.xlsx", organizationID)
	return buf, filename, nil
}
