package controllers

import (
	"crumella-backend/catalog"
	"crumella-backend/pkg/resp"

	"github.com/gin-gonic/gin"
)

type MenuController struct{}

func NewMenuController() *MenuController { return &MenuController{} }

// GET /menu: the fixed catalog, grouped by category in catalog order
func (mc *MenuController) List(c *gin.Context) {
	type group struct {
		Category string         `json:"category"`
		Items    []catalog.Item `json:"items"`
	}

	var groups []group
	idx := map[string]int{}
	for _, item := range catalog.Items {
		i, ok := idx[item.Category]
		if !ok {
			i = len(groups)
			idx[item.Category] = i
			groups = append(groups, group{Category: item.Category})
		}
		groups[i].Items = append(groups[i].Items, item)
	}

	resp.OK(c, groups)
}
