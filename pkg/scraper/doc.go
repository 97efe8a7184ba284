// Package scraper mirrors the images of a portfolio site into a local directory.
//
// A run walks the configured pages strictly in order:
//
//	for each page suffix:
//	    resolve against the base URL, fetch, extract <img> sources
//	    for each source:
//	        resolve against the page URL
//	        skip if already in the ledger
//	        derive a file name, download, record on success
//
// Nothing runs concurrently. A page that cannot be fetched contributes no images
// and leaves the ledger and counter untouched; an image that cannot be downloaded
// is reported and skipped, and because only successful downloads enter the
// ledger it is attempted again if a later page references it. The only error Run
// returns is failure to create the target directory.
//
// Usage:
//
//	client := fetch.NewClient(cfg.HTTP.Timeout, log)
//	s, err := scraper.New(cfg, client, ui.NewReporter(os.Stdout, false), log)
//	if err != nil {
//	    return err
//	}
//
//	report, err := s.Run(ctx)
//
// File names come from the last segment of the image URL path. Empty segments and
// segments longer than MaxFilenameLength characters become image_<N>.jpg, where N
// is the number of images downloaded so far. Names are not checked against files
// already on disk, so a later image with the same name replaces an earlier one.
package scraper
