package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/san-kum/loopgen/internal/export"
	"github.com/san-kum/loopgen/internal/loop"
)

// GenerateRequest mirrors loop.Input with JSON field names. Omitted fields
// fall back to the stock defaults so sparse requests stay usable. Fluidity
// and softness are pointers because zero is a meaningful value for both.
type GenerateRequest struct {
	Duration      float64  `json:"duration"`
	Frames        int      `json:"frames"`
	Radius        float64  `json:"radius"`
	CenterX       float64  `json:"centerX"`
	CenterY       float64  `json:"centerY"`
	Phase0        float64  `json:"phase0"`
	Loops         int      `json:"loops"`
	Inertia       float64  `json:"inertia"`
	Stiffness     float64  `json:"stiffness"`
	Fluidity      *float64 `json:"fluidity"`
	Softness      *float64 `json:"softness"`
	WarmupPeriods float64  `json:"warmupPeriods"`
}

func (r GenerateRequest) input() loop.Input {
	in := loop.DefaultInput()
	if r.Duration > 0 {
		in.Duration = r.Duration
	}
	if r.Frames > 0 {
		in.FrameCount = r.Frames
	}
	if r.Radius > 0 {
		in.Radius = r.Radius
	}
	in.CenterX = r.CenterX
	in.CenterY = r.CenterY
	in.Phase0 = r.Phase0
	if r.Loops > 0 {
		in.Loops = r.Loops
	}
	if r.Inertia > 0 {
		in.Inertia = r.Inertia
	}
	if r.Stiffness > 0 {
		in.Stiffness = r.Stiffness
	}
	if r.Fluidity != nil {
		in.Fluidity = *r.Fluidity
	}
	if r.Softness != nil {
		in.Softness = *r.Softness
	}
	if r.WarmupPeriods > 0 {
		in.WarmupPeriods = r.WarmupPeriods
	}
	return in
}

type LoopController struct {
	gen *loop.Generator
}

func NewLoopController() *LoopController {
	return &LoopController{gen: loop.NewGenerator()}
}

func (c *LoopController) Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (c *LoopController) Generate(ctx *gin.Context) {
	var req GenerateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	in := req.input()
	res := c.gen.Generate(in)

	ctx.JSON(http.StatusOK, export.NewDocument(res, in))
}
