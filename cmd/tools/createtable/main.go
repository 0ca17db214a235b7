package main

import (
	"log"
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func main() {
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		log.Fatal("DB_DSN environment variable is required")
	}
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	sql := `
	CREATE TABLE IF NOT EXISTS users (
	  id CHAR(36) NOT NULL,
	  email VARCHAR(255) NOT NULL,
	  password_hash VARBINARY(72) NOT NULL,
	  role VARCHAR(32) NOT NULL DEFAULT 'admin',
	  created_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
	  updated_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
	  PRIMARY KEY (id),
	  UNIQUE KEY ux_users_email (email)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;

	CREATE TABLE IF NOT EXISTS sessions (
	  id CHAR(36) NOT NULL,
	  user_id CHAR(36) NOT NULL,
	  expires_at DATETIME(3) NOT NULL,
	  created_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
	  last_seen_at DATETIME(3) NOT NULL,
	  PRIMARY KEY (id),
	  KEY ix_sessions_user_id (user_id),
	  CONSTRAINT fk_sessions_user FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;

	CREATE TABLE IF NOT EXISTS categories (
	  id CHAR(36) NOT NULL,
	  title VARCHAR(255) NOT NULL,
	  slug VARCHAR(255) NOT NULL,
	  sub_brand VARCHAR(255) NOT NULL DEFAULT '',
	  description TEXT,
	  hero_text TEXT,
	  display_order INT NOT NULL DEFAULT 0,
	  visible TINYINT(1) NOT NULL DEFAULT 1,
	  created_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
	  updated_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
	  PRIMARY KEY (id),
	  UNIQUE KEY ux_categories_slug (slug)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;

	CREATE TABLE IF NOT EXISTS products (
	  id CHAR(36) NOT NULL,
	  name VARCHAR(255) NOT NULL,
	  category_slug VARCHAR(255) NOT NULL DEFAULT '',
	  tagline VARCHAR(255) NOT NULL DEFAULT '',
	  description TEXT,
	  nutrition_info JSON,
	  variants JSON,
	  stock INT NOT NULL DEFAULT 0,
	  visible TINYINT(1) NOT NULL DEFAULT 1,
	  trending TINYINT(1) NOT NULL DEFAULT 0,
	  display_order INT NOT NULL DEFAULT 0,
	  slug VARCHAR(255) NOT NULL,
	  created_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
	  updated_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
	  PRIMARY KEY (id),
	  UNIQUE KEY ux_products_slug (slug),
	  KEY ix_products_category (category_slug)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;

	CREATE TABLE IF NOT EXISTS product_images (
	  id CHAR(36) NOT NULL,
	  product_id CHAR(36) NOT NULL,
	  storage_key VARCHAR(512) NOT NULL DEFAULT '',
	  url VARCHAR(1024) NOT NULL,
	  is_default TINYINT(1) NOT NULL DEFAULT 0,
	  display_order INT NOT NULL DEFAULT 0,
	  created_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
	  PRIMARY KEY (id),
	  KEY ix_product_images_product (product_id),
	  CONSTRAINT fk_product_images_product FOREIGN KEY (product_id) REFERENCES products(id) ON DELETE CASCADE
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;

	CREATE TABLE IF NOT EXISTS testimonials (
	  id CHAR(36) NOT NULL,
	  author VARCHAR(255) NOT NULL,
	  location VARCHAR(255) NOT NULL DEFAULT '',
	  message TEXT NOT NULL,
	  rating INT NOT NULL DEFAULT 5,
	  product_name VARCHAR(255) NOT NULL DEFAULT '',
	  display_order INT NOT NULL DEFAULT 0,
	  created_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
	  updated_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
	  PRIMARY KEY (id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;

	CREATE TABLE IF NOT EXISTS why_us_features (
	  id CHAR(36) NOT NULL,
	  title VARCHAR(255) NOT NULL,
	  body TEXT,
	  icon VARCHAR(255) NOT NULL DEFAULT '',
	  feature_order INT NOT NULL DEFAULT 0,
	  created_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
	  updated_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
	  PRIMARY KEY (id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;

	CREATE TABLE IF NOT EXISTS page_sections (
	  id CHAR(36) NOT NULL,
	  page_key VARCHAR(64) NOT NULL,
	  heading VARCHAR(255) NOT NULL DEFAULT '',
	  body TEXT,
	  image_url VARCHAR(1024) NOT NULL DEFAULT '',
	  display_order INT NOT NULL DEFAULT 0,
	  visible TINYINT(1) NOT NULL DEFAULT 1,
	  created_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
	  updated_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
	  PRIMARY KEY (id),
	  KEY ix_page_sections_page (page_key)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;

	CREATE TABLE IF NOT EXISTS site_settings (
	  id CHAR(36) NOT NULL,
	  site_name VARCHAR(255) NOT NULL DEFAULT '',
	  tagline VARCHAR(255) NOT NULL DEFAULT '',
	  contact_email VARCHAR(255) NOT NULL DEFAULT '',
	  contact_phone VARCHAR(64) NOT NULL DEFAULT '',
	  whatsapp_number VARCHAR(64) NOT NULL DEFAULT '',
	  address TEXT,
	  instagram_url VARCHAR(512) NOT NULL DEFAULT '',
	  facebook_url VARCHAR(512) NOT NULL DEFAULT '',
	  youtube_url VARCHAR(512) NOT NULL DEFAULT '',
	  footer_text TEXT,
	  shipping_policy TEXT,
	  refund_policy TEXT,
	  show_testimonial TINYINT(1) NOT NULL DEFAULT 1,
	  show_whatsapp TINYINT(1) NOT NULL DEFAULT 1,
	  ordering_enabled TINYINT(1) NOT NULL DEFAULT 1,
	  updated_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
	  PRIMARY KEY (id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;
	`

	if err := db.Exec(sql).Error; err != nil {
		log.Fatalf("Failed to create tables: %v", err)
	}
	log.Println("Tables created.")
}
