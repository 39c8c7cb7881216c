package services

import "transaction-reports/internal/models"

// ComputePagination builds page metadata for a result set of totalCount records.
// totalPages is the ceiling of totalCount / pageSize; a non-positive pageSize
// falls back to the default so the division is always defined.
func ComputePagination(totalCount, pageSize, pageNumber int) models.PaginationMetadata {
	if pageSize <= 0 {
		pageSize = models.DefaultPageSize
	}

	totalPages := 0
	if totalCount > 0 {
		totalPages = totalCount / pageSize
		if totalCount%pageSize != 0 {
			totalPages++
		}
	}

	return models.PaginationMetadata{
		CurrentPage: pageNumber,
		PageSize:    pageSize,
		TotalCount:  totalCount,
		TotalPages:  totalPages,
	}
}
