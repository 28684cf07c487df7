package controller

import (
	"strconv"
	"strings"

	"github.com/sustainage/sdg-engine/internal/domain"
	"github.com/sustainage/sdg-engine/internal/service/collection"
	"github.com/sustainage/sdg-engine/internal/service/mapping"
	"github.com/sustainage/sdg-engine/internal/service/selection"
	"github.com/sustainage/sdg-engine/internal/service/taxonomy"
)

type Controller struct {
	taxonomyService   *taxonomy.Service
	selectionService  *selection.Service
	collectionService *collection.Service
	mappingService    *mapping.Service
}

func NewController(
	taxonomyService *taxonomy.Service,
	selectionService *selection.Service,
	collectionService *collection.Service,
	mappingService *mapping.Service,
) *Controller {
	return &Controller{
		taxonomyService:   taxonomyService,
		selectionService:  selectionService,
		collectionService: collectionService,
		mappingService:    mappingService,
	}
}

// parseGoalNos reads a comma-separated goal_ids query value; garbage entries
// are dropped.
func parseGoalNos(raw string) []domain.GoalNo {
	var goalNos []domain.GoalNo
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if goalNo, err := strconv.Atoi(part); err == nil {
			goalNos = append(goalNos, goalNo)
		}
	}
	return goalNos
}
