package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Settings struct {
	MariaDBDSN      string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ServerPort      int

	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioUseSSL    bool
	MediaBucket    string

	RedisAddr     string
	RedisPassword string

	QueuePrimary string
	QueueDead    string
	RetryCeiling int
	RetryDelay   time.Duration

	FFmpegBin     string
	MaxImageWidth int
	JPEGQuality   int
	VideoBitrate  string
	AudioBitrate  string

	JWTPublicKey string
}

func Load() (*Settings, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found; proceeding with OS environment variables")
	}

	viper.AutomaticEnv()

	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: could not read .env file: %v", err)
	}

	required := []string{
		"MARIADB_DSN",
		"MARIADB_MAX_OPEN_CONN",
		"MARIADB_MAX_IDLE_CONNS",
		"MARIADB_CONN_MAX_LIFETIME",
		"SERVER_PORT",
		"MINIO_ENDPOINT",
		"MINIO_ACCESS_KEY",
		"MINIO_SECRET_KEY",
	}
	for _, key := range required {
		if !viper.IsSet(key) {
			return nil, fmt.Errorf("%s is required", key)
		}
	}

	viper.SetDefault("MEDIA_BUCKET", "kitchen-media")
	viper.SetDefault("QUEUE_PRIMARY", "media:process")
	viper.SetDefault("QUEUE_DEAD", "media:dead")
	viper.SetDefault("RETRY_CEILING", 3)
	viper.SetDefault("RETRY_DELAY", 30)
	viper.SetDefault("FFMPEG_BIN", "ffmpeg")
	viper.SetDefault("MAX_IMAGE_WIDTH", 800)
	viper.SetDefault("JPEG_QUALITY", 80)
	viper.SetDefault("VIDEO_BITRATE", "1500k")
	viper.SetDefault("AUDIO_BITRATE", "128k")

	return &Settings{
		MariaDBDSN:      viper.GetString("MARIADB_DSN"),
		MaxOpenConns:    viper.GetInt("MARIADB_MAX_OPEN_CONN"),
		MaxIdleConns:    viper.GetInt("MARIADB_MAX_IDLE_CONNS"),
		ConnMaxLifetime: time.Duration(viper.GetInt("MARIADB_CONN_MAX_LIFETIME")) * time.Second,
		ServerPort:      viper.GetInt("SERVER_PORT"),
		MinioEndpoint:   viper.GetString("MINIO_ENDPOINT"),
		MinioAccessKey:  viper.GetString("MINIO_ACCESS_KEY"),
		MinioSecretKey:  viper.GetString("MINIO_SECRET_KEY"),
		MinioUseSSL:     viper.GetBool("MINIO_USE_SSL"),
		MediaBucket:     viper.GetString("MEDIA_BUCKET"),
		RedisAddr:       viper.GetString("REDIS_ADDR"),
		RedisPassword:   viper.GetString("REDIS_PASSWORD"),
		QueuePrimary:    viper.GetString("QUEUE_PRIMARY"),
		QueueDead:       viper.GetString("QUEUE_DEAD"),
		RetryCeiling:    viper.GetInt("RETRY_CEILING"),
		RetryDelay:      time.Duration(viper.GetInt("RETRY_DELAY")) * time.Second,
		FFmpegBin:       viper.GetString("FFMPEG_BIN"),
		MaxImageWidth:   viper.GetInt("MAX_IMAGE_WIDTH"),
		JPEGQuality:     viper.GetInt("JPEG_QUALITY"),
		VideoBitrate:    viper.GetString("VIDEO_BITRATE"),
		AudioBitrate:    viper.GetString("AUDIO_BITRATE"),
		JWTPublicKey:    viper.GetString("JWT_PUBLIC_KEY"),
	}, nil
}
