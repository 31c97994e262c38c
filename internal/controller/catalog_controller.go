package controller

import (
	"neuro_study_backend/internal/engine"
	"neuro_study_backend/internal/service"
	"neuro_study_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CatalogController struct {
	Engine *service.EngineHolder
}

func NewCatalogController(holder *service.EngineHolder) *CatalogController {
	return &CatalogController{Engine: holder}
}

// SubjectResponse 课程目录中的一个科目
type SubjectResponse struct {
	Name   string         `json:"name"`
	Topics []engine.Topic `json:"topics"`
}

// @Summary 课程目录
// @Description 列出所有科目及其主题权重、难度
// @Tags 课程目录
// @Produce json
// @Success 200 {object} util.Response{data=[]SubjectResponse}
// @Router /catalog/subjects [get]
func (c *CatalogController) ListSubjects(ctx *gin.Context) {
	catalog := c.Engine.Builder().Catalog()

	subjects := make([]SubjectResponse, 0, len(catalog.Subjects()))
	for _, name := range catalog.Subjects() {
		subjects = append(subjects, SubjectResponse{
			Name:   name,
			Topics: catalog.Topics(name),
		})
	}
	util.Success(ctx, subjects)
}
