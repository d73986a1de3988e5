package handler

import (
	"main/dto"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

func GetNoteHandler(c *gin.Context, notesService *usecase.NotesService) {
	noteID := c.Param("id")
	callerID := c.GetString("user_id")

	note, err := notesService.GetNote(c.Request.Context(), noteID, callerID)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.Success(c, dto.ToNoteResponse(note))
}

func ListNotesHandler(c *gin.Context, notesService *usecase.NotesService) {
	callerID := c.GetString("user_id")

	notes, err := notesService.ListNotes(c.Request.Context(), callerID)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.Success(c, dto.ToNoteResponses(notes))
}

func CreateNoteHandler(c *gin.Context, notesService *usecase.NotesService) {
	var req dto.CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "text is required")
		return
	}

	callerID := c.GetString("user_id")
	note, err := notesService.CreateNote(c.Request.Context(), callerID, req.Text, req.Private)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.Created(c, dto.ToNoteResponse(note))
}

func UpdateNoteHandler(c *gin.Context, notesService *usecase.NotesService) {
	var req dto.UpdateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "text is required")
		return
	}

	noteID := c.Param("id")
	callerID := c.GetString("user_id")

	note, err := notesService.UpdateNote(c.Request.Context(), noteID, callerID, req.Text, req.Private)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.Success(c, dto.ToNoteResponse(note))
}

// DeleteNoteHandler archives the note. The row is kept so the note can be
// restored later; 204 on success.
func DeleteNoteHandler(c *gin.Context, notesService *usecase.NotesService) {
	noteID := c.Param("id")
	callerID := c.GetString("user_id")

	if err := notesService.ArchiveNote(c.Request.Context(), noteID, callerID); err != nil {
		respondError(c, err)
		return
	}

	utils.NoContent(c)
}

func RestoreNoteHandler(c *gin.Context, notesService *usecase.NotesService) {
	noteID := c.Param("id")
	callerID := c.GetString("user_id")

	if err := notesService.RestoreNote(c.Request.Context(), noteID, callerID); err != nil {
		respondError(c, err)
		return
	}

	utils.Success(c, gin.H{"message": "note restored"})
}

func AssignTagsHandler(c *gin.Context, notesService *usecase.NotesService) {
	var req dto.AssignTagsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "tags list is required")
		return
	}

	noteID := c.Param("id")
	if err := notesService.AssignTags(c.Request.Context(), noteID, req.Tags); err != nil {
		respondError(c, err)
		return
	}

	utils.Success(c, gin.H{})
}

func FilterNotesHandler(c *gin.Context, notesService *usecase.NotesService) {
	tagNames := c.QueryArray("tags")
	usernames := c.QueryArray("username")

	notes, err := notesService.FilterNotes(c.Request.Context(), tagNames, usernames)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.Success(c, dto.ToNoteResponses(notes))
}

// UserNotesHandler returns every note of a user regardless of visibility.
func UserNotesHandler(c *gin.Context, notesService *usecase.NotesService) {
	userID := c.Param("id")

	notes, err := notesService.NotesByUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.Success(c, dto.ToNoteResponses(notes))
}
