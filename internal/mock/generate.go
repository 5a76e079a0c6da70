package mock

//go:generate mockgen -destination aliases.go -package mock github.com/buildbarn/bb-local-tmp-storage/internal/mock/aliases Cleaner
//go:generate mockgen -destination cleaner.go -package mock github.com/buildbarn/bb-local-tmp-storage/pkg/cleaner Directory
//go:generate mockgen -destination filesystem.go -package mock github.com/buildbarn/bb-local-tmp-storage/pkg/filesystem StorageRoot,StorageRootOpener,UsableSpaceQuerier
//go:generate mockgen -destination tmpstorage.go -package mock github.com/buildbarn/bb-local-tmp-storage/pkg/tmpstorage AdmissionChecker,Provider
