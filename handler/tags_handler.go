package handler

import (
	"main/model"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

func CreateTagHandler(c *gin.Context, tagsService *usecase.TagsService) {
	var req model.Tag
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "tag name is required")
		return
	}

	tag, err := tagsService.CreateTag(c.Request.Context(), req.Name)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.Created(c, tag)
}

func GetTagHandler(c *gin.Context, tagsService *usecase.TagsService) {
	tag, err := tagsService.GetTag(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	utils.Success(c, tag)
}

func ListTagsHandler(c *gin.Context, tagsService *usecase.TagsService) {
	tags, err := tagsService.ListTags(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	utils.Success(c, tags)
}
