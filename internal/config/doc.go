// Package config provides configuration parsing for treesite projects.
//
// The configuration is stored in treesite.yaml (or treesite.json) at the
// site root. This package handles loading, saving, and validating it.
//
// # Configuration File Structure
//
//	title: My Site
//	lang: en
//	content: content
//	static: static
//	output: public
//	stylesheets: [/css/site.css]
//	build:
//	  strategy: parallel
//	  workers: 4
//	  fileExtension: html
//	dev:
//	  port: 8080
//	  debounce: 150ms
//	  ignore: ["*.swp", ".git"]
//	s3:
//	  bucket: my-site
//	  prefix: www
//	  region: eu-west-1
//
// # Usage
//
//	cfg, err := config.Load(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Output:", cfg.OutputPath())
package config
