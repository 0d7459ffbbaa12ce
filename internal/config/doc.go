// Package config provides configuration parsing for donut-ui projects.
//
// The configuration is stored in donut.json at the project root.
// This package handles loading, saving, and validating configuration.
//
// # Configuration File Structure
//
//	{
//	  "name": "storefront",
//	  "theme": {
//	    "file": "design/theme.yaml"
//	  },
//	  "tailwind": {
//	    "enabled": true,
//	    "input": "styles/input.css",
//	    "output": "public/styles.css",
//	    "configOut": "tailwind.config.js",
//	    "cssOut": "styles/theme.css",
//	    "minify": true
//	  },
//	  "gallery": {
//	    "host": "localhost",
//	    "port": 4477,
//	    "watch": true
//	  },
//	  "publish": {
//	    "bucket": "design-tokens",
//	    "prefix": "donut/",
//	    "region": "us-east-1"
//	  }
//	}
//
// DONUT_GALLERY_PORT and DONUT_PUBLISH_BUCKET override the file.
//
// # Usage
//
//	cfg, err := config.LoadFromWorkingDir()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Gallery:", cfg.GalleryURL())
package config
