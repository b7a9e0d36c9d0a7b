package transform

import (
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/saqib1218/FoodApp-Backend-sub000/internal/port"
	"github.com/saqib1218/FoodApp-Backend-sub000/internal/usecase/media"
)

// transformVideo produces a bitrate-bounded H.264/AAC transcode and a single
// keyframe extracted as the thumbnail.
func (t *Transformer) transformVideo(ctx context.Context, srcPath, dstDir string) ([]port.Derivative, error) {
	outPath := filepath.Join(dstDir, "processed.mp4")
	args := []string{
		"-y",
		"-hide_banner",
		"-loglevel", "error",
		"-i", srcPath,
		"-c:v", "libx264",
		"-b:v", t.cfg.VideoBitrate,
		"-maxrate", t.cfg.VideoBitrate,
		"-bufsize", t.cfg.VideoBitrate,
		"-c:a", "aac",
		"-movflags", "+faststart",
		outPath,
	}
	if err := t.runFFmpeg(ctx, args); err != nil {
		return nil, fmt.Errorf("%w: video transcode: %v", media.ErrTransformFailed, err)
	}

	thumbPath := filepath.Join(dstDir, "thumbnail.jpeg")
	thumbArgs := []string{
		"-y",
		"-hide_banner",
		"-loglevel", "error",
		"-ss", "1",
		"-i", srcPath,
		"-frames:v", "1",
		"-q:v", "3",
		thumbPath,
	}
	if err := t.runFFmpeg(ctx, thumbArgs); err != nil {
		return nil, fmt.Errorf("%w: thumbnail extraction: %v", media.ErrTransformFailed, err)
	}

	return []port.Derivative{
		{Path: outPath, Role: port.DerivativeRoleProcessed, ContentType: "video/mp4", Ext: "mp4"},
		{Path: thumbPath, Role: port.DerivativeRoleThumbnail, ContentType: "image/jpeg", Ext: "jpeg"},
	}, nil
}

// transformAudio produces a bitrate-bounded MP3 transcode.
func (t *Transformer) transformAudio(ctx context.Context, srcPath, dstDir string) ([]port.Derivative, error) {
	outPath := filepath.Join(dstDir, "processed.mp3")
	args := []string{
		"-y",
		"-hide_banner",
		"-loglevel", "error",
		"-i", srcPath,
		"-vn",
		"-c:a", "libmp3lame",
		"-b:a", t.cfg.AudioBitrate,
		outPath,
	}
	if err := t.runFFmpeg(ctx, args); err != nil {
		return nil, fmt.Errorf("%w: audio transcode: %v", media.ErrTransformFailed, err)
	}

	return []port.Derivative{
		{Path: outPath, Role: port.DerivativeRoleProcessed, ContentType: "audio/mpeg", Ext: "mp3"},
	}, nil
}

func (t *Transformer) runFFmpeg(ctx context.Context, args []string) error {
	cmd := exec.CommandContext(ctx, t.cfg.FFmpegBin, args...) //nolint:gosec
	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("ffmpeg: %w: %s", err, strings.TrimSpace(string(output)))
	}
	return nil
}
